package types

type contextKey string

// DBKey carries the seed tool's database handle through the CLI context.
const DBKey contextKey = "db"
