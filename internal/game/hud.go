package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/engine"
)

func (g *Game) DrawUI() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	gui.Label(rl.Rectangle{X: 10, Y: 10, Width: 420, Height: 20}, "D/A E/Q S/W to fly, mouse to look, Esc to quit")
	gui.Label(rl.Rectangle{X: 10, Y: 30, Width: 420, Height: 20}, "F1 debug view, F2 contact pass")
	rl.DrawFPS(10, 55)

	stats := g.Renderer.Stats
	status := fmt.Sprintf("voxels %d | drawn %d | culled %d | contacts %d | %s",
		len(g.Scene.Voxels), stats.Drawn, stats.Culled, g.Contacts, g.Router.State())
	gui.StatusBar(rl.Rectangle{X: 0, Y: screenH - 24, Width: screenW, Height: 24}, status)

	if !g.DebugMode {
		return
	}
	t, _ := engine.Get[engine.Transform](g.World, g.Scene.Camera)
	panel := rl.Rectangle{X: screenW - 270, Y: 10, Width: 260, Height: 110}
	gui.Panel(panel, "Debug")
	lines := []string{
		fmt.Sprintf("Camera: (%.1f, %.1f, %.1f)", t.Position.X, t.Position.Y, t.Position.Z),
		fmt.Sprintf("Update: %.2f ms", g.updateMs),
		fmt.Sprintf("Draw:   %.2f ms", g.drawMs),
		fmt.Sprintf("Pose:   %s", g.Scene.Config.PoseMode),
	}
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: panel.X + 10, Y: panel.Y + 30 + float32(i)*18, Width: panel.Width - 20, Height: 18}, line)
	}
}
