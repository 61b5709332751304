// Package config binds the ratsim CLI's flags to viper, so every
// setting can also arrive via a RATSIM_-prefixed environment variable
// or an optional config file, matching the cobra+viper pairing used
// throughout the reference CLI this tool's command tree is modeled on.
package config
