package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/game"
	"github.com/plus3/stackfall/settings"
)

// HistorySize is the number of frames kept for plots.
const HistorySize = 120

// Panels returns the standard inspector windows for a session.
func Panels(s *game.Session, prefs *settings.Manager) []Item {
	return []Item{
		EngineInspector(s),
		SpawnHistogram(s),
		SchedulerPanel(s),
		PerformancePanel(s, NewMetrics(HistorySize)),
		SettingsPanel(prefs),
	}
}

func EngineInspector(s *game.Session) Item {
	return Item{
		Name: "Engine",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

			if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			snap := s.Snapshot()
			imgui.Text(fmt.Sprintf("Board: %dx%d", snap.Rows, snap.Cols))
			if snap.GameOver {
				imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
				if imgui.Button("Restart") {
					s.Restart()
				}
			} else {
				imgui.Text("Playing")
			}

			imgui.Separator()
			if snap.HasActive {
				p := snap.Active
				imgui.Text(fmt.Sprintf("Active: %s", p.Kind))
				imgui.Text(fmt.Sprintf("Anchor: (%d, %d)", p.X, p.Y))
				imgui.Text(fmt.Sprintf("Matrix: %dx%d", p.Matrix.Rows(), p.Matrix.Cols()))
				imgui.Text(fmt.Sprintf("Ghost row: %d", snap.GhostY))
			} else {
				imgui.Text("Active: none")
			}

			imgui.Separator()
			gravity := s.Gravity()
			imgui.Text(fmt.Sprintf("Gravity: %s every %s", runState(gravity.Running()), gravity.Interval))
			imgui.Text(fmt.Sprintf("Actions applied: %d", s.Applied()))

			if imgui.TreeNodeStr("Board") {
				imgui.Text(snap.String())
				imgui.TreePop()
			}

			imgui.End()
		},
	}
}

func runState(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}

func SpawnHistogram(s *game.Session) Item {
	return Item{
		Name: "Spawns",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 260), imgui.CondOnce)

			if !imgui.BeginV("Spawns", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			stats := s.Stats()
			total := stats.TotalSpawns()
			imgui.Text(fmt.Sprintf("Pieces: %d", total))
			imgui.Text(fmt.Sprintf("Merges: %d  Lines: %d  Restarts: %d", stats.Merges, stats.Lines, stats.Restarts))

			rows := histogramRows(stats)
			maxCount := 0
			for _, row := range rows {
				maxCount = max(maxCount, row.Count)
			}

			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("Kind")
				imgui.TableSetupColumn("Count")
				imgui.TableSetupColumn("Share")
				imgui.TableHeadersRow()

				for _, row := range rows {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(row.Kind.String())
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", row.Count))
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.1f%%", row.Share*100))

					if maxCount > 0 {
						barWidth := float32(row.Count) / float32(maxCount) * 60.0
						imgui.SameLine()
						drawList := imgui.WindowDrawList()
						pos := imgui.CursorScreenPos()
						color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
						drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
					}
				}

				imgui.EndTable()
			}

			imgui.End()
		},
	}
}

// HistogramRow is one line of the spawn table.
type HistogramRow struct {
	Kind  engine.Kind
	Count int
	Share float64
}

// histogramRows orders the spawn counts by kind.
func histogramRows(stats engine.Stats) []HistogramRow {
	total := stats.TotalSpawns()
	rows := make([]HistogramRow, 0, len(stats.Spawns))
	for k, n := range stats.Spawns {
		row := HistogramRow{Kind: k, Count: n}
		if total > 0 {
			row.Share = float64(n) / float64(total)
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b HistogramRow) int {
		return int(a.Kind) - int(b.Kind)
	})
	return rows
}

func SchedulerPanel(s *game.Session) Item {
	return Item{
		Name: "Systems",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(300, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(420, 160), imgui.CondOnce)

			if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			stats := s.SchedulerStats()
			imgui.Text(fmt.Sprintf("Frames: %d  Executions: %d", stats.Frames, stats.TotalExecutions))

			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Runs")
				imgui.TableSetupColumn("Last")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableHeadersRow()

				for _, sys := range stats.Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(sys.Name)
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
					imgui.TableNextColumn()
					imgui.Text(sys.LastDuration.String())
					imgui.TableNextColumn()
					imgui.Text(sys.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(sys.MaxDuration.String())
				}

				imgui.EndTable()
			}

			imgui.End()
		},
	}
}

// PerformancePanel samples m once per rendered frame and plots it.
func PerformancePanel(s *game.Session, m *Metrics) Item {
	return Item{
		Name: "Performance",
		Render: func() {
			m.Sample(s.SchedulerStats())

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

			if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			avg := m.Frame.Average()
			if avg > 0 {
				imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
			}
			imgui.Text("Frame Time Graph (ms)")
			frames := m.Frame.Ordered()
			imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))

			names := make([]string, 0, len(m.Systems))
			for name := range m.Systems {
				names = append(names, name)
			}
			slices.Sort(names)

			yMax := 0.1
			for _, name := range names {
				yMax = max(yMax, float64(m.Systems[name].Max())*1.1)
			}

			if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Time (ms)", 0, 0)
				implot.SetupAxisLimitsV(implot.AxisY1, 0, yMax, implot.CondAlways)
				for _, name := range names {
					samples := m.Systems[name].Ordered()
					implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
				}
				implot.EndPlot()
			}

			imgui.End()
		},
	}
}

// SettingsPanel exposes the presentation toggles. Changes persist on the
// frontend's next Save.
func SettingsPanel(prefs *settings.Manager) Item {
	return Item{
		Name: "Settings",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(730, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(200, 130), imgui.CondOnce)

			if !imgui.BeginV("Settings", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			p := prefs.Get()
			imgui.Checkbox("Ghost piece", &p.ShowGhost)
			imgui.Checkbox("Grid lines", &p.ShowGrid)
			imgui.Checkbox("Debug overlay", &p.DebugOverlay)
			if !prefs.Persistent() {
				imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "not persisted")
			}

			imgui.End()
		},
	}
}
