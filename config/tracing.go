package config

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/viper"
)

// TracerKeys lists the tracers used by trema packages.
var TracerKeys = []string{
	"trema.markup",
	"trema.tss",
	"trema.style",
	"trema.state",
	"trema.render",
}

// schukoConf adapts a viper instance to schuko.Configuration.
type schukoConf struct {
	*viper.Viper
}

var _ schuko.Configuration = schukoConf{}

func (sc schukoConf) InitDefaults()       { SetDefaults(sc.Viper) }
func (sc schukoConf) IsInteractive() bool { return false }

// Schuko returns the configuration as a schuko configuration.
func (c *Config) Schuko() schuko.Configuration {
	return schukoConf{c.Viper()}
}

// SetupTracing installs tracers for all trema packages. Tracing goes to a
// Go standard logger. Trace levels default to c.TraceLevel and may be
// overridden per tracer key.
func SetupTracing(c *Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	v := c.Viper()
	v.SetDefault("tracelevel.root", c.TraceLevel)
	for _, key := range TracerKeys {
		v.SetDefault("tracelevel."+key, c.TraceLevel)
	}
	if err := trace2go.ConfigureRoot(c.Schuko(), "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
