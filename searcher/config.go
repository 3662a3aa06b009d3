package searcher

// Config is the wire shape for search settings crossing in from the
// transport or configuration layer. Zero fields take the package defaults.
type Config struct {
	TimeLimitSeconds  float64 `json:"timeLimitSeconds" yaml:"timeLimitSeconds"`
	MaxSimulations    int     `json:"maxSimulations,omitempty" yaml:"maxSimulations"`
	ExplorationWeight float64 `json:"explorationWeight" yaml:"explorationWeight"`
	TacticalRollout   bool    `json:"tacticalRollout" yaml:"tacticalRollout"`
	WinCheckLimit     int     `json:"winCheckLimit" yaml:"winCheckLimit"`
	ThreatCheckLimit  int     `json:"threatCheckLimit" yaml:"threatCheckLimit"`
	MaxRolloutPlies   int     `json:"maxRolloutPlies" yaml:"maxRolloutPlies"`
}

func DefaultConfig() Config {
	return Config{
		TimeLimitSeconds:  10,
		ExplorationWeight: DefaultExploration,
		TacticalRollout:   true,
		WinCheckLimit:     DefaultWinCheckLimit,
		ThreatCheckLimit:  DefaultThreatCheckLimit,
		MaxRolloutPlies:   DefaultMaxRolloutPlies,
	}
}

func (c *Config) applyDefaults() {
	if c.ExplorationWeight <= 0 {
		c.ExplorationWeight = DefaultExploration
	}
	if c.WinCheckLimit <= 0 {
		c.WinCheckLimit = DefaultWinCheckLimit
	}
	if c.ThreatCheckLimit <= 0 {
		c.ThreatCheckLimit = DefaultThreatCheckLimit
	}
	if c.MaxRolloutPlies <= 0 {
		c.MaxRolloutPlies = DefaultMaxRolloutPlies
	}
}
