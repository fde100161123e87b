package common

const (
	RedisStreamLedgerMovement = "ledger.movement"

	RedisStreamGroup    = "report-group"
	RedisStreamConsumer = "report-consumer"

	// DefaultTimeZone is the station's local time zone, used for "today" boundaries.
	DefaultTimeZone = "America/Sao_Paulo"
)
