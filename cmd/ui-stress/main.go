package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/iamnbutler/sol-ui/geometry"
	"github.com/iamnbutler/sol-ui/interaction"
	"github.com/iamnbutler/sol-ui/layer"
	"github.com/iamnbutler/sol-ui/ui"
)

const (
	viewportWidth  = 1280
	viewportHeight = 720
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	widgetCount := flag.Int("widgets", 200, "The number of buttons declared per layer per frame.")
	layerCount := flag.Int("layers", 3, "The number of stacked UI layers.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting UI stress test...")

	// 1. Build the layer stack. Every layer opts into input so routing
	// always exercises the full descent.
	manager := layer.NewManager()
	manager.SetViewport(geometry.R(0, 0, viewportWidth, viewportHeight))

	var totalClicks int64
	for li := 0; li < *layerCount; li++ {
		manager.AddUi(li, layer.DefaultOptions().WithInput(), func(c *ui.Context) {
			for w := 0; w < *widgetCount; w++ {
				if c.Button(fmt.Sprintf("b%d", w), fmt.Sprintf("button %d", w)) {
					totalClicks++
				}
			}
		})
	}
	log.Printf("Built %d layers with %d widgets each.\n", *layerCount, *widgetCount)

	// 2. Run the frame loop with synthetic input.
	report := &Report{
		Duration:       *duration,
		Widgets:        *widgetCount,
		Layers:         *layerCount,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running stress loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			pos := geometry.V(rand.Float32()*viewportWidth, rand.Float32()*viewportHeight)
			manager.RouteInput(interaction.MouseMove(pos))
			if totalFrames%4 == 0 {
				manager.RouteInput(interaction.MouseDown(interaction.ButtonLeft, pos))
				manager.RouteInput(interaction.MouseUp(interaction.ButtonLeft, pos))
			}

			frameStart := time.Now()
			manager.RenderFrame()
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.TotalClicks = totalClicks
	report.FrameTime.Finalize()
	report.LayerStats = manager.Stats().Layers
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress loop finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
