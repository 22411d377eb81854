package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// battleUpdate is sent by a worker whenever a fight finishes.
type battleUpdate struct {
	WorkerID   int
	Encounter  string
	Won        bool
	Turns      int32
	FinalHP    int32
	Decisions  int
	PlanMicros int64
}

type model struct {
	battles      int
	wins         int
	decisions    int
	planMicros   int64
	startTime    time.Time
	recentFights []string
	updates      chan battleUpdate
}

func initialModel(updates chan battleUpdate) model {
	return model{startTime: time.Now(), updates: updates}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForUpdate(updates chan battleUpdate) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		return m, tickCmd()
	case battleUpdate:
		m.battles++
		if msg.Won {
			m.wins++
		}
		m.decisions += msg.Decisions
		m.planMicros += msg.PlanMicros

		outcome := "LOST"
		if msg.Won {
			outcome = "won "
		}
		line := fmt.Sprintf("Worker %d: %s %s in %d turns, hp %d", msg.WorkerID, outcome, msg.Encounter, msg.Turns, msg.FinalHP)
		m.recentFights = append([]string{line}, m.recentFights...)
		if len(m.recentFights) > 10 {
			m.recentFights = m.recentFights[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	winrate := 0.0
	avgPlan := 0.0
	if m.battles > 0 {
		winrate = float64(m.wins) / float64(m.battles) * 100
	}
	if m.decisions > 0 {
		avgPlan = float64(m.planMicros) / float64(m.decisions) / 1000
	}

	s := fmt.Sprintf("Battles:       %d\n", m.battles)
	s += fmt.Sprintf("Winrate:       %.1f%%\n", winrate)
	s += fmt.Sprintf("Decisions:     %d\n", m.decisions)
	s += fmt.Sprintf("Avg Plan Time: %.2fms\n", avgPlan)
	s += fmt.Sprintf("Duration:      %s\n\n", duration.Round(time.Second))

	s += "Recent Fights:\n"
	for _, f := range m.recentFights {
		s += f + "\n"
	}

	s += "\nPress q to quit.\n"
	return s
}
