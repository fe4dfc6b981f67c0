package entity

import (
	"database/sql"
	"time"
)

type SyncKind string

const (
	SyncKindOrders    SyncKind = "orders"
	SyncKindCampaigns SyncKind = "campaigns"
)

type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncLog records one fetch-and-upsert run against an upstream source.
type SyncLog struct {
	Id         string         `db:"id" json:"id"`
	Kind       SyncKind       `db:"kind" json:"kind"`
	Status     SyncStatus     `db:"status" json:"status"`
	RangeFrom  time.Time      `db:"range_from" json:"range_from"`
	RangeTo    time.Time      `db:"range_to" json:"range_to"`
	StartedAt  time.Time      `db:"started_at" json:"started_at"`
	FinishedAt sql.NullTime   `db:"finished_at" json:"-"`
	Fetched    int            `db:"fetched" json:"fetched"`
	Upserted   int            `db:"upserted" json:"upserted"`
	Error      sql.NullString `db:"error_message" json:"-"`
}
