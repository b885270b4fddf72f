// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the default number of rollout goroutines.
const GO_ROUTINES = 4

// GAMES defines the number of dealt games per benchmark configuration.
const GAMES = 20

// MAX_TURNS defines the number of moves after which a game is abandoned.
const MAX_TURNS = 1000

// RETRY_ATTEMPTS defines how often a failed move execution is attempted.
const RETRY_ATTEMPTS = 3

// RETRY_DELAY defines the initial back-off between execution attempts.
const RETRY_DELAY = 200 * time.Millisecond
