package events

import "strings"

// Topics builds the MQTT topics under a configurable prefix.
//
//	<prefix>/events/<action>   one message per store change, not retained
//	<prefix>/state/revision    latest revision, retained
//	<prefix>/system/status     online/offline, retained
type Topics struct {
	Prefix string
}

func (t Topics) Event(action string) string {
	return t.join("events", action)
}

func (t Topics) Revision() string {
	return t.join("state", "revision")
}

func (t Topics) Status() string {
	return t.join("system", "status")
}

func (t Topics) join(parts ...string) string {
	prefix := strings.Trim(t.Prefix, "/")
	if prefix == "" {
		return strings.Join(parts, "/")
	}
	return prefix + "/" + strings.Join(parts, "/")
}
