package gui

import (
	"charge-calculator/internal/composition"
	"charge-calculator/internal/gui/components"
	"charge-calculator/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const ResultPanelWidth = 300

// CalcScreen is the calculator: input grid and actions on the left, results
// and status on the right
type CalcScreen struct {
	window    fyne.Window
	logger    logger.Logger
	container *fyne.Container

	weightPill  *components.Pill
	inputGrid   *components.InputGrid
	toolbar     *components.Toolbar
	resultPanel *components.ResultPanel
	statusBar   *components.StatusBar
}

func NewCalcScreen(window fyne.Window, log logger.Logger) *CalcScreen {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	cs := &CalcScreen{
		window: window,
		logger: log,
	}
	cs.setupScreen()
	return cs
}

func (cs *CalcScreen) setupScreen() {
	title := widget.NewLabelWithStyle("Charge Calculation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel("Weighted composition of 9 materials")
	cs.weightPill = components.NewPill(totalWeightText(0))

	header := container.NewBorder(nil, nil,
		container.NewVBox(title, subtitle),
		cs.weightPill.GetContainer(),
	)

	cs.inputGrid = components.NewInputGrid()
	cs.toolbar = components.NewToolbar()
	cs.resultPanel = components.NewResultPanel()
	cs.statusBar = components.NewStatusBar()

	inputs := container.NewBorder(nil, cs.toolbar.GetContainer(), nil, nil,
		cs.inputGrid.GetContainer(),
	)

	results := container.NewBorder(cs.resultPanel.GetContainer(), nil, nil, nil,
		cs.statusBar.GetContainer(),
	)
	resultsBox := container.NewGridWrap(fyne.NewSize(ResultPanelWidth, results.MinSize().Height), results)

	cs.container = container.NewBorder(
		container.NewPadded(header),
		nil, nil,
		container.NewPadded(resultsBox),
		container.NewPadded(inputs),
	)
}

func totalWeightText(w float64) string {
	return "Total W: " + composition.FormatWeight(w)
}

func (cs *CalcScreen) GetContainer() *fyne.Container {
	return cs.container
}

func (cs *CalcScreen) InputGrid() *components.InputGrid {
	return cs.inputGrid
}

func (cs *CalcScreen) Toolbar() *components.Toolbar {
	return cs.toolbar
}

func (cs *CalcScreen) ResultPanel() *components.ResultPanel {
	return cs.resultPanel
}

func (cs *CalcScreen) StatusBar() *components.StatusBar {
	return cs.statusBar
}

func (cs *CalcScreen) RenderGrid(g composition.Grid) {
	cs.inputGrid.SetGrid(g)
}

func (cs *CalcScreen) RenderResult(res composition.Result) {
	cs.resultPanel.SetResult(res)
	cs.weightPill.SetText(totalWeightText(res.TotalWeight))
}

func (cs *CalcScreen) SetStatus(status string) {
	cs.statusBar.SetStatus(status)
}

func (cs *CalcScreen) ShowInfo(title, message string) {
	cs.logger.Debug("CalcScreen", "showing dialog", map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, cs.window)
}

// WeightText returns the total-weight pill text
func (cs *CalcScreen) WeightText() string {
	return cs.weightPill.Text()
}
