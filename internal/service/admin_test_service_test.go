package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/model"
)

func TestCreateTest_SkipsMalformedQuestionsAndKeepsOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.createTest(t, dto.TestCreateDTO{
		Name:            "Algebra",
		ClassLevel:      strPtr("7"),
		Subject:         strPtr("math"),
		DurationMinutes: numPtr("45"),
		Questions: []dto.QuestionCreateDTO{
			{QuestionText: "x+1=2, x?", Answers: []dto.AnswerOptionCreateDTO{{Variant: "A", Text: "1"}, {Variant: "B", Text: "2"}}},
			{QuestionText: "", Answers: []dto.AnswerOptionCreateDTO{{Variant: "A", Text: "orphan"}}},
			{QuestionText: "no options", Answers: nil, CorrectAnswer: "B"},
			{QuestionText: "2x=8, x?", Answers: []dto.AnswerOptionCreateDTO{{Variant: "A", Text: "2"}, {Variant: "B", Text: "4"}, {Variant: "C", Text: "8"}}, CorrectAnswer: "B"},
		},
	})

	detail, err := f.catalog.GetTestDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetTestDetails: %v", err)
	}
	if detail.ID != id || detail.Name != "Algebra" {
		t.Errorf("detail = %s/%s, want %s/Algebra", detail.ID, detail.Name, id)
	}
	if detail.DurationMinutes == nil || *detail.DurationMinutes != 45 {
		t.Errorf("DurationMinutes = %v, want 45", detail.DurationMinutes)
	}
	if detail.Image != nil {
		t.Errorf("Image = %v, want nil", *detail.Image)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(detail.Questions))
	}
	if detail.Questions[0].QuestionText != "x+1=2, x?" || detail.Questions[1].QuestionText != "2x=8, x?" {
		t.Errorf("questions out of order: %q, %q", detail.Questions[0].QuestionText, detail.Questions[1].QuestionText)
	}
	variants := ""
	for _, a := range detail.Questions[1].Answers {
		variants += a.Variant
	}
	if variants != "ABC" {
		t.Errorf("answer variants = %q, want ABC", variants)
	}

	stored, err := f.questions.FindByTestID(ctx, id)
	if err != nil {
		t.Fatalf("FindByTestID: %v", err)
	}
	if stored[0].CorrectAnswer != DefaultCorrectAnswer {
		t.Errorf("default correct answer = %q, want %q", stored[0].CorrectAnswer, DefaultCorrectAnswer)
	}
	if stored[1].CorrectAnswer != "B" {
		t.Errorf("correct answer = %q, want B", stored[1].CorrectAnswer)
	}
}

func TestCreateTest_Validation(t *testing.T) {
	valid := arithmeticTest("valid").Questions

	tests := []struct {
		name string
		req  dto.TestCreateDTO
	}{
		{"missing name", dto.TestCreateDTO{Questions: valid}},
		{"no questions", dto.TestCreateDTO{Name: "empty"}},
		{"fractional duration", dto.TestCreateDTO{Name: "t", Questions: valid, DurationMinutes: numPtr("30.5")}},
		{"non-numeric duration", dto.TestCreateDTO{Name: "t", Questions: valid, DurationMinutes: numPtr("half an hour")}},
		{"zero duration", dto.TestCreateDTO{Name: "t", Questions: valid, DurationMinutes: numPtr("0")}},
		{"negative duration", dto.TestCreateDTO{Name: "t", Questions: valid, DurationMinutes: numPtr("-5")}},
	}

	f := newFixture(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.admin.CreateTest(context.Background(), tc.req)
			assertKind(t, err, KindValidation)
		})
	}

	all, err := f.catalog.GetAllTests(context.Background())
	if err != nil {
		t.Fatalf("GetAllTests: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rejected requests stored %d tests", len(all))
	}
}

func TestParseDuration_FromJSON(t *testing.T) {
	tests := []struct {
		body string
		want *int
	}{
		{`{}`, nil},
		{`{"duration_minutes": null}`, nil},
		{`{"duration_minutes": 30}`, intPtr(30)},
		{`{"duration_minutes": "30"}`, intPtr(30)},
	}
	for _, tc := range tests {
		var req dto.TestCreateDTO
		if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.body, err)
		}
		got, err := parseDuration(req.DurationMinutes)
		if err != nil {
			t.Fatalf("parseDuration(%s): %v", tc.body, err)
		}
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("parseDuration(%s) = %d, want nil", tc.body, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("parseDuration(%s) = %v, want %d", tc.body, got, *tc.want)
		}
	}
}

func TestGetAllTests_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := f.createTest(t, arithmeticTest("older"))
	newer := f.createTest(t, arithmeticTest("newer"))
	backdated := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := f.db.Model(&model.Test{}).Where("id = ?", older).Update("created_at", backdated).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	all, err := f.catalog.GetAllTests(ctx)
	if err != nil {
		t.Fatalf("GetAllTests: %v", err)
	}
	if len(all) != 2 || all[0].ID != newer || all[1].ID != older {
		t.Fatalf("order = %+v, want [%s %s]", all, newer, older)
	}
}

func TestGetTestDetails_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.catalog.GetTestDetails(context.Background(), "999999")
	assertKind(t, err, KindNotFound)
}

func TestDeleteTest_WrongCodeIsForbidden(t *testing.T) {
	f := newFixture(t)
	id := f.createTest(t, arithmeticTest("guarded"))

	for _, code := range []string{"", "0000", "2024"} {
		assertKind(t, f.admin.DeleteTest(context.Background(), id, code), KindForbidden)
	}
	// Checked before existence.
	assertKind(t, f.admin.DeleteTest(context.Background(), "999999", "bad"), KindForbidden)

	if _, err := f.catalog.GetTestDetails(context.Background(), id); err != nil {
		t.Fatalf("test gone after forbidden delete: %v", err)
	}
}

func TestDeleteTest_MissingTest(t *testing.T) {
	f := newFixture(t)
	assertKind(t, f.admin.DeleteTest(context.Background(), "999999", DeleteCode), KindNotFound)
	if len(f.publisher.deleted) != 0 {
		t.Errorf("published %v for a missing test", f.publisher.deleted)
	}
}

func TestDeleteTest_Cascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doomed := f.createTest(t, arithmeticTest("doomed"))
	kept := f.createTest(t, arithmeticTest("kept"))
	qs := f.questionIDs(t, doomed)
	if _, err := f.submissions.SubmitTest(ctx, doomed, dto.TestSubmitDTO{UserID: "u1", Answers: []dto.SubmittedAnswerDTO{{QuestionID: qs[0], Answer: "B"}}}); err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if _, err := f.submissions.SubmitTest(ctx, kept, dto.TestSubmitDTO{UserID: "u1"}); err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	if err := f.admin.DeleteTest(ctx, doomed, DeleteCode); err != nil {
		t.Fatalf("DeleteTest: %v", err)
	}

	if exists, _ := f.tests.ExistsByID(ctx, doomed); exists {
		t.Error("test still exists")
	}
	if n := f.questionCount(t, doomed); n != 0 {
		t.Errorf("%d questions left", n)
	}
	if n := f.answerCount(t, doomed); n != 0 {
		t.Errorf("%d answer options left", n)
	}
	if n := f.resultCount(t, doomed, "u1"); n != 0 {
		t.Errorf("%d results left", n)
	}

	// The other test is untouched.
	if n := f.questionCount(t, kept); n != 2 {
		t.Errorf("kept test has %d questions, want 2", n)
	}
	if n := f.answerCount(t, kept); n != 5 {
		t.Errorf("kept test has %d answer options, want 5", n)
	}
	if n := f.resultCount(t, kept, "u1"); n != 1 {
		t.Errorf("kept test has %d results, want 1", n)
	}

	if len(f.publisher.deleted) != 1 || f.publisher.deleted[0] != doomed {
		t.Errorf("published deletions = %v, want [%s]", f.publisher.deleted, doomed)
	}
	assertKind(t, f.admin.DeleteTest(ctx, doomed, DeleteCode), KindNotFound)
}

func intPtr(n int) *int { return &n }
