package curve

import "github.com/sgostarter/i/l"

var logger = l.NewNopLoggerWrapper().WithFields(l.StringField(l.ClsKey, "curve"))

// SetLogger routes fallback diagnostics to the given logger. A nil logger
// silences them.
func SetLogger(lw l.Wrapper) {
	if lw == nil {
		lw = l.NewNopLoggerWrapper()
	}

	logger = lw.WithFields(l.StringField(l.ClsKey, "curve"))
}
