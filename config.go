package impact

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce = new(sync.Once)
	config  = _impactconfig{}
)

// _impactconfig is a "hidden" struct, just use `impactConfig`.
type _impactconfig struct {
	outputDir string
	stepSize  float64 // default integration step in seconds
	maxSteps  int     // default step budget
}

// impactConfig returns the process-wide configuration. The configuration file
// is optional: without IMPACT_CONFIG (or with no conf.toml in that directory)
// the defaults apply. Loaded exactly once, also under concurrent callers.
func impactConfig() _impactconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	config = _impactconfig{outputDir: ".", stepSize: 1, maxSteps: 100000}
	if confPath := os.Getenv("IMPACT_CONFIG"); confPath != "" {
		v := viper.New()
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err == nil {
			if dir := v.GetString("general.output_path"); dir != "" {
				config.outputDir = dir
			}
			if step := v.GetFloat64("integration.step"); step > 0 {
				config.stepSize = step
			}
			if budget := v.GetInt("integration.max_steps"); budget > 0 {
				config.maxSteps = budget
			}
		}
	}
}
