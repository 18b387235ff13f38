// Package config manages user-level settings stored at ~/.packmeta/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default output format used by the inspect command.
package config
