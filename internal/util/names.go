package util

import (
	"fmt"
	"math/rand/v2"
)

var (
	creativeAdjectives = []string{
		"amber", "brisk", "calm", "dusky", "eager", "fabled", "gentle",
		"hollow", "ivory", "jade", "keen", "lunar", "misty", "noble",
		"opal", "quiet", "rustic", "silent", "tidal", "vivid", "wild",
	}
	creativeNouns = []string{
		"breeze", "canyon", "dawn", "ember", "fjord", "glade", "harbor",
		"island", "meadow", "orchard", "pebble", "ridge", "sparrow",
		"thicket", "valley", "willow",
	}
)

// CreativeName generates a random adjective-noun-NN name stem.
func CreativeName() string {
	adj := creativeAdjectives[rand.IntN(len(creativeAdjectives))]
	noun := creativeNouns[rand.IntN(len(creativeNouns))]
	return fmt.Sprintf("%s-%s-%02d", adj, noun, rand.IntN(100))
}
