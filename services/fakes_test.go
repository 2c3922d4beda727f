package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/repositories"
)

type fakeMatchRepo struct {
	matches      map[int]*models.Match
	updatedSlots map[int][2]*int
}

func newFakeMatchRepo(matches ...*models.Match) *fakeMatchRepo {
	r := &fakeMatchRepo{
		matches:      make(map[int]*models.Match),
		updatedSlots: make(map[int][2]*int),
	}
	for _, m := range matches {
		r.matches[m.ID] = m
	}
	return r
}

func (r *fakeMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	match.ID = len(r.matches) + 1
	r.matches[match.ID] = match
	return nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	return m, nil
}

func (r *fakeMatchRepo) ListByGroup(ctx context.Context, exec repositories.SQLExecutor, groupID int) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.GroupID != nil && *m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchNo < out[j].MatchNo })
	return out, nil
}

func (r *fakeMatchRepo) ListByDivision(ctx context.Context, exec repositories.SQLExecutor, divisionID int, stage *models.Stage) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.DivisionID != divisionID {
			continue
		}
		if stage != nil && m.Stage != *stage {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchNo < out[j].MatchNo })
	return out, nil
}

func (r *fakeMatchRepo) ListByDate(ctx context.Context, exec repositories.SQLExecutor, date time.Time) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.Date != nil && m.Date.Truncate(24*time.Hour).Equal(date.Truncate(24*time.Hour)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) UpdateResult(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	r.matches[match.ID] = match
	return nil
}

func (r *fakeMatchRepo) UpdateTeamSlots(ctx context.Context, exec repositories.SQLExecutor, id int, homeTeamID, awayTeamID *int) error {
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.HomeTeamID = homeTeamID
	m.AwayTeamID = awayTeamID
	r.updatedSlots[id] = [2]*int{homeTeamID, awayTeamID}
	return nil
}

type fakeTeamRepo struct {
	teams map[int]*models.Team
	saved map[int]int
}

func newFakeTeamRepo(teams ...*models.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{
		teams: make(map[int]*models.Team),
		saved: make(map[int]int),
	}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	return r
}

func (r *fakeTeamRepo) Create(ctx context.Context, exec repositories.SQLExecutor, team *models.Team) error {
	team.ID = len(r.teams) + 1
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return t, nil
}

func (r *fakeTeamRepo) ListByGroup(ctx context.Context, exec repositories.SQLExecutor, groupID int) ([]*models.Team, error) {
	var out []*models.Team
	for _, t := range r.teams {
		if t.GroupID == groupID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeamRepo) ListByDivision(ctx context.Context, exec repositories.SQLExecutor, divisionID int) ([]*models.Team, error) {
	var out []*models.Team
	for _, t := range r.teams {
		if t.DivisionID == divisionID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeamRepo) UpdateStanding(ctx context.Context, exec repositories.SQLExecutor, team *models.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	r.teams[team.ID] = team
	r.saved[team.ID]++
	return nil
}

type fakeGroupRepo struct {
	groups map[int]*models.Group
}

func newFakeGroupRepo(groups ...*models.Group) *fakeGroupRepo {
	r := &fakeGroupRepo{groups: make(map[int]*models.Group)}
	for _, g := range groups {
		r.groups[g.ID] = g
	}
	return r
}

func (r *fakeGroupRepo) Create(ctx context.Context, exec repositories.SQLExecutor, group *models.Group) error {
	group.ID = len(r.groups) + 1
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) ListByDivision(ctx context.Context, exec repositories.SQLExecutor, divisionID int) ([]*models.Group, error) {
	var out []*models.Group
	for _, g := range r.groups {
		if g.DivisionID == divisionID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCriteriaRepo struct {
	criteria map[int]*models.Criteria
}

func newFakeCriteriaRepo(criteria ...*models.Criteria) *fakeCriteriaRepo {
	r := &fakeCriteriaRepo{criteria: make(map[int]*models.Criteria)}
	for _, c := range criteria {
		r.criteria[c.ID] = c
	}
	return r
}

func (r *fakeCriteriaRepo) Create(ctx context.Context, exec repositories.SQLExecutor, criteria *models.Criteria) error {
	criteria.ID = len(r.criteria) + 1
	r.criteria[criteria.ID] = criteria
	return nil
}

func (r *fakeCriteriaRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Criteria, error) {
	c, ok := r.criteria[id]
	if !ok {
		return nil, repositories.ErrCriteriaNotFound
	}
	return c, nil
}

func (r *fakeCriteriaRepo) ListByDivision(ctx context.Context, exec repositories.SQLExecutor, divisionID int) ([]*models.Criteria, error) {
	var out []*models.Criteria
	for _, c := range r.criteria {
		if c.DivisionID == divisionID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeNotifier struct {
	broadcasts []int
}

func (n *fakeNotifier) BroadcastStandingsUpdated(divisionID int, payload interface{}) {
	n.broadcasts = append(n.broadcasts, divisionID)
}

var _ repositories.MatchRepository = (*fakeMatchRepo)(nil)
var _ repositories.TeamRepository = (*fakeTeamRepo)(nil)
var _ repositories.GroupRepository = (*fakeGroupRepo)(nil)
var _ repositories.CriteriaRepository = (*fakeCriteriaRepo)(nil)

func fmtRanks(teams []*models.Team) string {
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	out := ""
	for _, t := range teams {
		rank := 0
		if t.LeagueRank != nil {
			rank = *t.LeagueRank
		}
		out += fmt.Sprintf("%d:%d ", t.ID, rank)
	}
	return out
}
