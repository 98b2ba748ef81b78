package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"gorm.io/gorm"
)

func TestGetTestResults_NamesAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := arithmeticTest("ranked")
	req.ClassLevel = strPtr("5")
	req.DurationMinutes = numPtr("20")
	id := f.createTest(t, req)
	qs := f.questionIDs(t, id)

	if _, err := f.userSvc.Login(ctx, dto.LoginRequestDTO{ID: "u1", Name: "Aziz"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	first, err := f.submissions.SubmitTest(ctx, id, dto.TestSubmitDTO{UserID: "u1", Answers: []dto.SubmittedAnswerDTO{{QuestionID: qs[0], Answer: "B"}}})
	if err != nil {
		t.Fatalf("SubmitTest u1: %v", err)
	}
	// u2 never logged in.
	second, err := f.submissions.SubmitTest(ctx, id, dto.TestSubmitDTO{UserID: "u2"})
	if err != nil {
		t.Fatalf("SubmitTest u2: %v", err)
	}
	backdate(t, f, first.ID, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	resp, err := f.resultSvc.GetTestResults(ctx, id)
	if err != nil {
		t.Fatalf("GetTestResults: %v", err)
	}
	if resp.TestName != "ranked" {
		t.Errorf("TestName = %q", resp.TestName)
	}
	if resp.ClassLevel == nil || *resp.ClassLevel != "5" || resp.DurationMinutes == nil || *resp.DurationMinutes != 20 {
		t.Errorf("metadata = %v/%v, want 5/20", resp.ClassLevel, resp.DurationMinutes)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Results))
	}
	if resp.Results[0].ID != second.ID || resp.Results[1].ID != first.ID {
		t.Errorf("order = [%d %d], want newest first [%d %d]", resp.Results[0].ID, resp.Results[1].ID, second.ID, first.ID)
	}
	if resp.Results[0].UserName != UnknownUserLabel {
		t.Errorf("unregistered user name = %q, want %q", resp.Results[0].UserName, UnknownUserLabel)
	}
	if resp.Results[1].UserName != "Aziz" || resp.Results[1].Score != 50 {
		t.Errorf("u1 entry = %+v", resp.Results[1])
	}
}

func TestGetTestResults_EmptyAndMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.createTest(t, arithmeticTest("untaken"))

	resp, err := f.resultSvc.GetTestResults(ctx, id)
	if err != nil {
		t.Fatalf("GetTestResults: %v", err)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("Results = %#v, want empty non-nil", resp.Results)
	}

	_, err = f.resultSvc.GetTestResults(ctx, "999999")
	assertKind(t, err, KindNotFound)
}

func TestGetUserResults_DeletedTestIsLabelled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alive := f.createTest(t, arithmeticTest("alive"))
	gone := f.createTest(t, arithmeticTest("gone"))
	for _, id := range []string{alive, gone} {
		if _, err := f.submissions.SubmitTest(ctx, id, dto.TestSubmitDTO{UserID: "u1"}); err != nil {
			t.Fatalf("SubmitTest(%s): %v", id, err)
		}
	}
	// Remove the test but leave its result dangling.
	if err := f.answers.DeleteByTestID(ctx, gone); err != nil {
		t.Fatalf("delete answers: %v", err)
	}
	if err := f.questions.DeleteByTestID(ctx, gone); err != nil {
		t.Fatalf("delete questions: %v", err)
	}
	if err := f.tests.Delete(ctx, gone); err != nil {
		t.Fatalf("delete test: %v", err)
	}

	entries, err := f.resultSvc.GetUserResults(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserResults: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	names := map[string]string{}
	for _, e := range entries {
		names[e.TestID] = e.TestName
	}
	if names[alive] != "alive" || names[gone] != UnknownTestLabel {
		t.Errorf("test names = %v", names)
	}

	none, err := f.resultSvc.GetUserResults(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetUserResults(nobody): %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("entries = %#v, want empty non-nil", none)
	}
}

func TestGetResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.createTest(t, arithmeticTest("single"))
	qs := f.questionIDs(t, id)

	if _, err := f.userSvc.Login(ctx, dto.LoginRequestDTO{ID: "u1", Name: "Dilnoza"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	scored, err := f.submissions.SubmitTest(ctx, id, dto.TestSubmitDTO{
		UserID:  "u1",
		Answers: []dto.SubmittedAnswerDTO{{QuestionID: qs[0], Answer: "B"}, {QuestionID: qs[1], Answer: "c"}},
	})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	detail, err := f.resultSvc.GetResult(ctx, scored.ID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	want := dto.ResultDetailDTO{
		ID:             scored.ID,
		UserName:       "Dilnoza",
		UserID:         "u1",
		TestName:       "single",
		TestID:         id,
		Score:          100,
		CorrectAnswers: 2,
		TotalQuestions: 2,
	}
	detail.CompletedAt = time.Time{}
	if *detail != want {
		t.Errorf("GetResult = %+v, want %+v", *detail, want)
	}

	_, err = f.resultSvc.GetResult(ctx, scored.ID+1000)
	assertKind(t, err, KindNotFound)
}

// brokenUserRepo fails every name lookup and remembers whether any of them
// was issued on a transaction-bound copy.
type brokenUserRepo struct {
	repository.UserRepository
	inTx  bool
	calls *[]bool
}

func (r brokenUserRepo) WithTx(tx *gorm.DB) repository.UserRepository {
	return brokenUserRepo{UserRepository: r.UserRepository.WithTx(tx), inTx: true, calls: r.calls}
}

func (r brokenUserRepo) FindByIDs(context.Context, []string) ([]model.User, error) {
	*r.calls = append(*r.calls, r.inTx)
	return nil, errors.New("connection reset")
}

func TestResultNames_LookupFailureFallsBackOutsideTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.createTest(t, arithmeticTest("lookup"))
	if _, err := f.userSvc.Login(ctx, dto.LoginRequestDTO{ID: "u1", Name: "Aziz"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	scored, err := f.submissions.SubmitTest(ctx, id, dto.TestSubmitDTO{UserID: "u1"})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	var calls []bool
	users := brokenUserRepo{UserRepository: f.users, calls: &calls}
	svc := NewResultService(f.db, f.tests, users, f.results)

	byTest, err := svc.GetTestResults(ctx, id)
	if err != nil {
		t.Fatalf("GetTestResults: %v", err)
	}
	if len(byTest.Results) != 1 || byTest.Results[0].UserName != UnknownUserLabel {
		t.Errorf("results = %+v, want one entry labelled %q", byTest.Results, UnknownUserLabel)
	}
	one, err := svc.GetResult(ctx, scored.ID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if one.UserName != UnknownUserLabel || one.TestName != "lookup" {
		t.Errorf("result = %+v", one)
	}

	if len(calls) != 2 {
		t.Fatalf("name lookups = %d, want 2", len(calls))
	}
	for i, inTx := range calls {
		if inTx {
			t.Errorf("name lookup %d ran inside a transaction", i)
		}
	}
}

func backdate(t *testing.T, f *fixture, resultID uint, at time.Time) {
	t.Helper()
	if err := f.db.Model(&model.TestResult{}).Where("id = ?", resultID).Update("completed_at", at).Error; err != nil {
		t.Fatalf("backdate result %d: %v", resultID, err)
	}
}
