package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func sampleSolve() *Solve {
	return &Solve{
		ScrambleText:     "R U",
		SolutionText:     "U' R'",
		CanonicalText:    "U' R'",
		ScrambledDepth:   1,
		SolvedDepth:      1,
		Levels:           1,
		VisitedScrambled: 11,
		VisitedSolved:    7,
		Intersections:    1,
		DurationMs:       3,
		MaxDepth:         8,
		Parallel:         true,
	}
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if v != LatestVersion() {
		t.Errorf("version = %d, want %d", v, LatestVersion())
	}

	// Applying again is a no-op.
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
}

func TestSolveCreateGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	notes := "first"
	s := sampleSolve()
	s.Notes = &notes
	id, err := repo.Create(s)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create should assign an ID")
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.SolutionText != "U' R'" || got.FaceTurns() != 2 || !got.Parallel || got.MaxDepth != 8 {
		t.Errorf("unexpected solve: %+v", got)
	}
	if got.Notes == nil || *got.Notes != "first" {
		t.Errorf("notes = %v, want first", got.Notes)
	}

	missing, err := repo.Get("nope")
	if err != nil || missing != nil {
		t.Errorf("Get(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestSolveListAndLast(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		s := sampleSolve()
		s.CreatedAt = base.Add(time.Duration(i) * time.Second)
		id, err := repo.Create(s)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, id)
	}

	list, err := repo.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].SolveID != ids[2] || list[1].SolveID != ids[1] {
		t.Errorf("List(2) returned wrong solves")
	}

	last, err := repo.GetLast()
	if err != nil || last == nil || last.SolveID != ids[2] {
		t.Errorf("GetLast = %v, %v; want %s", last, err, ids[2])
	}

	count, err := repo.Count()
	if err != nil || count != 3 {
		t.Errorf("Count = %d, %v; want 3", count, err)
	}
}

func TestCreateWithMovesAndCascade(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)

	id, err := solves.CreateWithMoves(sampleSolve(), []MoveRecord{
		{Sequence: SequenceScramble, Segment: SegmentScramble, MoveIndex: 0, Notation: "R"},
		{Sequence: SequenceScramble, Segment: SegmentScramble, MoveIndex: 1, Notation: "U"},
		{Sequence: SequenceSolution, Segment: SegmentScrambled, MoveIndex: 0, Notation: "U'"},
		{Sequence: SequenceSolution, Segment: SegmentSolved, MoveIndex: 1, Notation: "R'"},
	})
	if err != nil {
		t.Fatalf("CreateWithMoves: %v", err)
	}

	sol, err := moves.GetBySolve(id, SequenceSolution)
	if err != nil {
		t.Fatalf("GetBySolve: %v", err)
	}
	if len(sol) != 2 || sol[0].Notation != "U'" || sol[1].Segment != SegmentSolved {
		t.Errorf("unexpected solution moves: %+v", sol)
	}

	if n, _ := moves.Count(id, SequenceScramble); n != 2 {
		t.Errorf("scramble count = %d, want 2", n)
	}

	if err := solves.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n, _ := moves.Count(id, SequenceSolution); n != 0 {
		t.Errorf("moves should cascade on delete, %d left", n)
	}
}

func TestCreateWithMovesRollsBack(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)

	_, err := solves.CreateWithMoves(sampleSolve(), []MoveRecord{
		{Sequence: SequenceSolution, Segment: SegmentScrambled, MoveIndex: 0, Notation: "R"},
		{Sequence: SequenceSolution, Segment: SegmentScrambled, MoveIndex: 0, Notation: "U"},
	})
	if err == nil {
		t.Fatal("duplicate move index should fail")
	}
	if n, _ := solves.Count(); n != 0 {
		t.Errorf("failed insert should roll back the solve, %d stored", n)
	}
}

func TestFindByPrefix(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s := sampleSolve()
	s.SolveID = "abc123"
	if _, err := repo.Create(s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	s2 := sampleSolve()
	s2.SolveID = "abd456"
	if _, err := repo.Create(s2); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByPrefix("abc")
	if err != nil || got == nil || got.SolveID != "abc123" {
		t.Errorf("FindByPrefix(abc) = %v, %v", got, err)
	}
	if _, err := repo.FindByPrefix("ab"); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("FindByPrefix(ab) should be ambiguous, got %v", err)
	}
	if got, err := repo.FindByPrefix("zz"); got != nil || err != nil {
		t.Errorf("FindByPrefix(zz) = %v, %v; want nil, nil", got, err)
	}
}

func TestFindByPrefixMatchesWildcardsLiterally(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for _, id := range []string{"abc123", "a_c999", "a%c777"} {
		s := sampleSolve()
		s.SolveID = id
		if _, err := repo.Create(s); err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
	}

	got, err := repo.FindByPrefix("a_")
	if err != nil || got == nil || got.SolveID != "a_c999" {
		t.Errorf("FindByPrefix(a_) = %v, %v; want a_c999", got, err)
	}
	got, err = repo.FindByPrefix("a%")
	if err != nil || got == nil || got.SolveID != "a%c777" {
		t.Errorf("FindByPrefix(a%%) = %v, %v; want a%%c777", got, err)
	}
	if got, err := repo.FindByPrefix("%"); got != nil || err != nil {
		t.Errorf("FindByPrefix(%%) = %v, %v; want nil, nil", got, err)
	}
	if got, err := repo.FindByPrefix(`a\`); got != nil || err != nil {
		t.Errorf("FindByPrefix(a\\) = %v, %v; want nil, nil", got, err)
	}
}

func TestGetRejectsCorruptCreatedAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s := sampleSolve()
	s.SolveID = "bad-time"
	if _, err := repo.Create(s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := db.Exec("UPDATE solves SET created_at = 'yesterday' WHERE solve_id = ?", s.SolveID); err != nil {
		t.Fatalf("corrupting created_at: %v", err)
	}

	got, err := repo.Get(s.SolveID)
	if err == nil {
		t.Fatalf("Get should fail on an unparseable created_at, got %+v", got)
	}
	if !strings.Contains(err.Error(), "created_at") {
		t.Errorf("error should name created_at: %v", err)
	}
	if _, err := repo.List(10); err == nil {
		t.Error("List should fail on an unparseable created_at")
	}
}

func TestStats(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for _, depth := range []int{1, 3} {
		s := sampleSolve()
		s.ScrambledDepth = depth
		s.SolvedDepth = depth
		s.RotationLen = 2 * (depth - 1)
		if _, err := repo.Create(s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	st, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Count != 2 || st.MaxFaceTurns != 6 || st.AvgFaceTurns != 4 || st.AvgRotationMoves != 2 {
		t.Errorf("unexpected stats: %+v", st)
	}
}
