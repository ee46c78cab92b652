// Command tvremote replays a scripted remote-control session against an
// in-memory television and prints the resulting state.
//
// It loads configuration from ~/.config/tvremote/config.toml (or --config),
// builds the slog logger, and exposes:
//
//	tvremote demo             run the reference walkthrough
//	tvremote config init      write a sample configuration file
//	tvremote config validate  load and validate the configuration
package main
