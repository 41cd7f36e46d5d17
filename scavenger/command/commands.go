package command

// Commands is the go-flags command tree for the scavenger CLI.
type Commands struct {
	Audit AuditCmd `command:"audit" description:"Audit address records for scavenging candidates"`
}
