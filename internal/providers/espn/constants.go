package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/soccer/usa.nwsl/scoreboard"
	defaultHTTPTimeout = 10 * time.Second
	// upstream responses are a few hundred KB at most
	maxBodyBytes = 4 << 20
)
