package configs

// Promotion configures the suggestion promotion job. ServiceKey is the
// elevated credential; an empty key disables every promotion run.
type Promotion struct {
	ServiceKey    string `env:"PROMOTION_SERVICE_KEY"`
	VoteThreshold int    `env:"PROMOTION_VOTE_THRESHOLD" envDefault:"5"`
	Schedule      string `env:"PROMOTION_SCHEDULE"`
}
