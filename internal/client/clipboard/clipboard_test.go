package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNop(t *testing.T) {
	var w Writer = Nop{}
	assert.NoError(t, w.WriteAll("secret"))
}

func TestDetect(t *testing.T) {
	w := Detect()
	if Available() {
		assert.IsType(t, System{}, w)
	} else {
		assert.IsType(t, Nop{}, w)
	}
}
