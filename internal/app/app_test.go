package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriveStopsWhenFrameIsDone(t *testing.T) {
	reload := make(chan string, 1)
	reload <- "phong"

	var reloaded []string
	frames := 0
	drive(context.Background(), reload,
		func(name string) { reloaded = append(reloaded, name) },
		func() bool {
			frames++
			return frames == 3
		},
	)

	assert.Equal(t, 3, frames)
	assert.Equal(t, []string{"phong"}, reloaded)
}

func TestDriveInterruptIsCleanShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	drive(ctx, make(chan string),
		func(string) { t.Fatal("unexpected reload") },
		func() bool {
			frames++
			if frames == 2 {
				cancel()
			}
			return false
		},
	)

	assert.Equal(t, 2, frames)
}
