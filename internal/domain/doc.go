// Package domain contains the core entities of the task board, users
// and tasks, together with their construction defaults and validation
// rules. It is independent of any transport or storage mechanism.
package domain
