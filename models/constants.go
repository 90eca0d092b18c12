package models

// Counter sequence names. Each lives as one item in the Counters table and is
// bumped with an atomic ADD, so concurrent creates never hand out the same id.
const (
	SequenceClassID   = "classId"
	SequenceCreatorID = "creatorId"
)

// CountersTable is the DynamoDB table name for id sequences
const CountersTable = "Counters"

// ScopeAccessAsUser is the scope claim required on protected routes.
const ScopeAccessAsUser = "access_as_user"
