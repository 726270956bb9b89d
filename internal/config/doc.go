// Package config manages user-level settings stored at ~/.phoenix-kits/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template override directory and the Phoenix trace endpoint injected into
// generated projects. Every key can also be set through a PHOENIX_KITS_<KEY>
// environment variable.
package config
