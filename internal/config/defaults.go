package config

// DefaultConfigFile is the input file read when no --config-file flag is given.
const DefaultConfigFile = "./icons.input.json"

// DefaultOutputDir is used when neither the file nor the icon sets an output.
const DefaultOutputDir = "."
