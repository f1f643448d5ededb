// Package cli provides the interactive chat command-line client.
//
// It wires configuration, the local session database, the HTTP client and the
// services, then runs a REPL on stdin. The REPL is the UI layer bound to the
// state store: background watchers print the channel popup and the profile
// when their flags flip, and persist the selected channel between runs.
//
// Commands:
//   - login / logout
//   - channels, channel <id>, newchannel, editchannel <id>, select <id>, popup
//   - invite <user> <channelId>
//   - user <name>, users <a,b,...>, profile, editprofile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
