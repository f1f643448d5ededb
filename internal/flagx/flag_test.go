package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clientFlags are the flags the config loader owns.
var clientFlags = []string{"-a", "-t", "-d", "-l"}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "server address and timeout",
			args:    []string{"-a", "http://chat.local:8080", "-t", "5"},
			allowed: clientFlags,
			want:    []string{"-a", "http://chat.local:8080", "-t", "5"},
		},
		{
			name:    "config flag left to its own loader",
			args:    []string{"-c", "chat.yaml", "-l", "debug"},
			allowed: clientFlags,
			want:    []string{"-l", "debug"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=/var/lib/gophchat/session.db", "-x=1"},
			allowed: clientFlags,
			want:    []string{"-d=/var/lib/gophchat/session.db"},
		},
		{
			name:    "value that starts with a dash is not consumed",
			args:    []string{"-l", "-t", "3"},
			allowed: clientFlags,
			want:    []string{"-l", "-t", "3"},
		},
		{
			name:    "flag at the end without value",
			args:    []string{"-a"},
			allowed: clientFlags,
			want:    []string{"-a"},
		},
		{
			name:    "equals form keeps dashes in the value",
			args:    []string{"-config=--odd.json"},
			allowed: []string{"-config"},
			want:    []string{"-config=--odd.json"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-a", "http://one", "-a", "http://two"},
			allowed: clientFlags,
			want:    []string{"-a", "http://one", "-a", "http://two"},
		},
		{
			name:    "positional arguments dropped",
			args:    []string{"login", "alice", "-l", "warn"},
			allowed: clientFlags,
			want:    []string{"-l", "warn"},
		},
		{
			name:    "double dash ends scanning",
			args:    []string{"-l", "info", "--", "-a", "http://ignored"},
			allowed: clientFlags,
			want:    []string{"-l", "info"},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: clientFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/gophchat/client.yaml"}, want: "/etc/gophchat/client.yaml"},
		{name: "long", args: []string{"-config", "client.json"}, want: "client.json"},
		{name: "equals", args: []string{"-config=client.json"}, want: "client.json"},
		{name: "mixed with client flags", args: []string{"-a", "http://chat", "-c", "c.yaml", "-l", "debug"}, want: "c.yaml"},
		{name: "last wins", args: []string{"-c", "first.yaml", "-config", "second.yaml"}, want: "second.yaml"},
		{name: "absent", args: []string{"-a", "http://chat"}, want: ""},
		{name: "no args", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
