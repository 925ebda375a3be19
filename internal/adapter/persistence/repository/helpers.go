package repository

import (
	"sort"
	"strings"
	"time"

	"agenda_rastreadores/internal/domain/entities"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// matchesFilter applies the parts of a filter a backend could not push down.
func matchesFilter(inst entities.Installation, f entities.InstallationFilter) bool {
	if f.TecnicoID != "" && !inst.IsAssignedTo(f.TecnicoID) {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if inst.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(inst.NomeCompleto), q) && !strings.Contains(strings.ToLower(inst.Placa), q) {
			return false
		}
	}
	return true
}

// sortAgenda orders by date, then time, then creation. Unscheduled jobs go last.
func sortAgenda(list []entities.Installation) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if ka, kb := scheduleKey(a), scheduleKey(b); ka != kb {
			if ka == "" || kb == "" {
				return kb == ""
			}
			return ka < kb
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func scheduleKey(inst entities.Installation) string {
	if inst.DataInstalacao == nil {
		return ""
	}
	key := *inst.DataInstalacao
	if inst.Horario != nil {
		key += "T" + *inst.Horario
	}
	return key
}

func sortHistory(events []entities.HistoryEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].ID < events[j].ID
		}
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
}

func sortObservations(obs []entities.Observation) {
	sort.SliceStable(obs, func(i, j int) bool {
		if obs[i].CreatedAt.Equal(obs[j].CreatedAt) {
			return obs[i].ID < obs[j].ID
		}
		return obs[i].CreatedAt.Before(obs[j].CreatedAt)
	})
}

// updatedAt is the patch stamp, or the wall clock for unstamped patches.
func updatedAt(patch entities.InstallationPatch) time.Time {
	if at := patch.StampedAt(); !at.IsZero() {
		return at.UTC()
	}
	return time.Now().UTC()
}
