package viz_test

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bgcircles/internal/scene"
	"github.com/san-kum/bgcircles/internal/viz"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var _ = Describe("Model", func() {
	var m *viz.Model

	BeforeEach(func() {
		m = viz.NewModel(scene.DefaultOptions(), 60, 42, nil)
	})

	It("waits for a window size before generating circles", func() {
		Expect(m.Snapshot().Circles).To(BeEmpty())
		Expect(m.Component().State()).To(Equal(scene.Inactive))
		Expect(m.View()).To(ContainSubstring("waiting"))
	})

	Context("after the first window size", func() {
		BeforeEach(func() {
			m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
		})

		It("generates the configured population in pixel space", func() {
			snap := m.Snapshot()
			Expect(snap.Circles).To(HaveLen(scene.DefaultCount))
			Expect(snap.Viewport).To(Equal(scene.Viewport{Width: 80 * viz.CellWidthPx, Height: 24 * viz.CellHeightPx}))
			Expect(m.Canvas().Width).To(Equal(80))
			Expect(m.Canvas().Height).To(Equal(24))
		})

		It("steps on every frame and keeps ticking", func() {
			before := m.Snapshot().Circles
			_, cmd := m.Update(viz.FrameMsg(time.Now()))
			Expect(cmd).NotTo(BeNil())
			Expect(m.Frames()).To(Equal(1))
			Expect(m.Snapshot().Circles).NotTo(Equal(before))
		})

		It("keeps the population across resizes", func() {
			before := m.Snapshot().Circles
			m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
			after := m.Snapshot().Circles
			Expect(after).To(HaveLen(len(before)))
			for i := range after {
				Expect(after[i].Size).To(Equal(before[i].Size))
			}
		})

		It("pauses and resumes on space", func() {
			m.Update(key(" "))
			Expect(m.Component().State()).To(Equal(scene.Inactive))

			paused := m.Snapshot().Circles
			for i := 0; i < 10; i++ {
				m.Update(viz.FrameMsg(time.Now()))
			}
			Expect(m.Snapshot().Circles).To(Equal(paused))

			m.Update(key(" "))
			Expect(m.Component().State()).To(Equal(scene.Running))
		})

		It("cycles themes", func() {
			Expect(m.Theme().Name).To(Equal("midnight"))
			m.Update(key("t"))
			Expect(m.Theme().Name).To(Equal("ember"))
		})

		It("renders circles into the canvas", func() {
			m.Update(viz.FrameMsg(time.Now()))
			Expect(m.Canvas().String()).To(MatchRegexp("[⠁-⣿]"))
			Expect(m.View()).To(ContainSubstring("bgcircles"))
		})

		It("tears the component down on quit", func() {
			_, cmd := m.Update(key("q"))
			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Expect(m.Component().State()).To(Equal(scene.Inactive))
			Expect(m.View()).To(BeEmpty())

			_, cmd = m.Update(viz.FrameMsg(time.Now()))
			Expect(cmd).To(BeNil())
		})
	})
})
