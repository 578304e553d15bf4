package models

// ShareStatus is the transient outcome of the last share attempt.
type ShareStatus string

const (
	ShareIdle   ShareStatus = "idle"
	ShareCopied ShareStatus = "copied"
	ShareError  ShareStatus = "error"
)
