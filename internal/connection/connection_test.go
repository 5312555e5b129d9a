package connection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
)

func wf200(t *testing.T) profile.Section {
	t.Helper()
	s, err := profile.NewSection(profile.Dimensions{
		Name: "WF 200x100", Type: "WF", Weight: 21.3,
		D: 200, Bf: 100, Tw: 5.5, Tf: 8,
		Ag: 2716, Ix: 18.4e6, Iy: 1.34e6,
		Rx: 82.4, Ry: 22.2, Zx: 213e3, Zy: 41.8e3,
	})
	require.NoError(t, err)
	return s
}
