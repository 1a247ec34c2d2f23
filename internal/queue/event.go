package queue

import "time"

// loginQueueName is the durable queue carrying login audit events.
const loginQueueName = "auth.login"

// LoginEvent is published after every successful login. Failed attempts
// are not published; they are visible through the logins_total metric.
type LoginEvent struct {
	Username string    `json:"username"`
	Role     string    `json:"role"`
	RemoteIP string    `json:"remote_ip"`
	At       time.Time `json:"at"`
}
