// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClientOrg is the predicate function for clientorg builders.
type ClientOrg func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// StageEvent is the predicate function for stageevent builders.
type StageEvent func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
