// Command prism-render loads a scene document and writes a rendered PNG, or
// opens a live ebiten preview window while the render runs.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"prism/internal/scenefixture"
	"prism/pkg/render"
	"prism/pkg/scene"
)

func main() {
	input := flag.String("i", "", "path to scene JSON (omit to use --demo)")
	output := flag.String("o", "render.png", "output PNG path")
	width := flag.Int("w", 800, "image width")
	height := flag.Int("H", 600, "image height")
	maxDepth := flag.Int("max-depth", 10, "maximum reflection recursion depth")
	samples := flag.Int("samples", 4, "sample count for stochastic anti-aliasing")
	aaFlag := flag.String("anti-aliasing", "no-jitter", "quincunx|stochastic|no-jitter")
	threads := flag.Int("threads", 0, "worker count (0 = hardware concurrency)")
	demo := flag.String("demo", "", "built-in demo scene: red-sphere|reflection-cutoff|area-light|ortho-grid|large-mesh")
	preview := flag.Bool("preview", false, "open a live preview window while rendering")
	flag.Parse()

	sc, err := loadScene(*input, *demo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading scene: %v\n", err)
		os.Exit(1)
	}

	aa, err := parseAntiAliasing(*aaFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	opts := render.Options{MaxDepth: *maxDepth, AntiAliasing: aa, Samples: *samples, Threads: *threads}

	if *preview {
		runWithPreview(sc, *width, *height, opts, *output)
		return
	}

	runHeadless(sc, *width, *height, opts, *output)
}

func loadScene(inputPath, demoName string) (*scene.Scene, error) {
	if inputPath != "" {
		return scene.LoadFile(inputPath)
	}
	switch demoName {
	case "", "red-sphere":
		return scenefixture.RedSphere(), nil
	case "reflection-cutoff":
		return scenefixture.ReflectionCutoff(), nil
	case "area-light":
		return scenefixture.AreaLightSoftness(), nil
	case "ortho-grid":
		return scenefixture.OrthoGridBackground(), nil
	case "large-mesh":
		return scenefixture.LargeMesh(4)
	default:
		return nil, fmt.Errorf("unknown demo scene %q", demoName)
	}
}

func parseAntiAliasing(s string) (render.AntiAliasing, error) {
	switch s {
	case "quincunx":
		return render.Quincunx, nil
	case "stochastic":
		return render.Stochastic, nil
	case "no-jitter", "":
		return render.NoJitter, nil
	default:
		return 0, fmt.Errorf("unknown anti-aliasing mode %q", s)
	}
}

func runHeadless(sc *scene.Scene, width, height int, opts render.Options, output string) {
	fmt.Println("Rendering...")
	fb, err := render.Render(sc, width, height, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
	savePNG(fb, output)
	fmt.Printf("Saved to %s\n", output)
}

func savePNG(fb *render.Framebuffer, path string) {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 255
		}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("failed to encode PNG: %v", err)
	}
}

// previewGame shows the framebuffer in a window; the render itself runs on
// its own goroutine and the game loop only ever reads the shared image
// under a mutex. The image stays blank until render.Render returns and is
// then filled in one step; partial tiles are not shown.
type previewGame struct {
	img    *image.RGBA
	mu     *sync.Mutex
	width  int
	height int
}

func (g *previewGame) Update() error { return nil }

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	screen.WritePixels(g.img.Pix)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func runWithPreview(sc *scene.Scene, width, height int, opts render.Options, output string) {
	var mu sync.Mutex
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	game := &previewGame{img: img, mu: &mu, width: width, height: height}

	go func() {
		fb, err := render.Render(sc, width, height, opts)
		if err != nil {
			log.Fatalf("render failed: %v", err)
		}
		mu.Lock()
		for y := 0; y < fb.Height; y++ {
			for x := 0; x < fb.Width; x++ {
				r, g, b := fb.At(x, y)
				i := img.PixOffset(x, y)
				img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 255
			}
		}
		mu.Unlock()
		savePNG(fb, output)
		fmt.Printf("Saved to %s\n", output)
	}()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("prism-render preview")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
