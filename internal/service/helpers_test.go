package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/testhub/config"
	"github.com/lshigami/testhub/database"
	"github.com/lshigami/testhub/internal/cache"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/event"
	"github.com/lshigami/testhub/internal/model"
	"github.com/lshigami/testhub/internal/repository"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type recordingPublisher struct {
	mu        sync.Mutex
	submitted []event.ResultSubmittedEvent
	deleted   []string
}

func (p *recordingPublisher) PublishResultSubmitted(_ context.Context, ev event.ResultSubmittedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitted = append(p.submitted, ev)
	return nil
}

func (p *recordingPublisher) PublishTestDeleted(_ context.Context, testID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, testID)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	db        *gorm.DB
	tests     repository.TestRepository
	questions repository.QuestionRepository
	answers   repository.AnswerRepository
	results   repository.TestResultRepository
	users     repository.UserRepository
	publisher *recordingPublisher

	admin       AdminTestService
	catalog     UserTestService
	submissions TestSubmissionService
	userSvc     UserService
	resultSvc   ResultService
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithAllocator(t, NewTestIDAllocator())
}

func newFixtureWithAllocator(t *testing.T, allocator TestIDAllocator) *fixture {
	return newFixtureWith(t, allocator, cache.NewTestCache(&config.Config{}))
}

func newFixtureWith(t *testing.T, allocator TestIDAllocator, testCache cache.TestCache) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{
		db:        db,
		tests:     repository.NewTestRepository(db),
		questions: repository.NewQuestionRepository(db),
		answers:   repository.NewAnswerRepository(db),
		results:   repository.NewTestResultRepository(db),
		users:     repository.NewUserRepository(db),
		publisher: &recordingPublisher{},
	}
	f.admin = NewAdminTestService(db, f.tests, f.questions, f.answers, f.results, allocator, testCache, f.publisher)
	f.catalog = NewUserTestService(db, f.tests, testCache)
	f.submissions = NewTestSubmissionService(db, f.tests, f.questions, f.results, NewScoringService(), f.publisher)
	f.userSvc = NewUserService(db, f.users)
	f.resultSvc = NewResultService(db, f.tests, f.users, f.results)
	return f
}

func (f *fixture) createTest(t *testing.T, req dto.TestCreateDTO) string {
	t.Helper()
	id, err := f.admin.CreateTest(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTest(%q): %v", req.Name, err)
	}
	return id
}

// arithmeticTest is a two-question test whose correct answers are B then C.
func arithmeticTest(name string) dto.TestCreateDTO {
	return dto.TestCreateDTO{
		Name: name,
		Questions: []dto.QuestionCreateDTO{
			{
				QuestionText:  "2+2?",
				Answers:       []dto.AnswerOptionCreateDTO{{Variant: "A", Text: "3"}, {Variant: "B", Text: "4"}},
				CorrectAnswer: "B",
			},
			{
				QuestionText:  "3*3?",
				Answers:       []dto.AnswerOptionCreateDTO{{Variant: "A", Text: "6"}, {Variant: "B", Text: "8"}, {Variant: "C", Text: "9"}},
				CorrectAnswer: "C",
			},
		},
	}
}

func (f *fixture) questionIDs(t *testing.T, testID string) []uint {
	t.Helper()
	qs, err := f.questions.FindByTestID(context.Background(), testID)
	if err != nil {
		t.Fatalf("FindByTestID(%s): %v", testID, err)
	}
	ids := make([]uint, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

func (f *fixture) count(t *testing.T, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(m).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", m, err)
	}
	return n
}

func (f *fixture) questionCount(t *testing.T, testID string) int64 {
	return f.count(t, &model.Question{}, "test_id = ?", testID)
}

func (f *fixture) answerCount(t *testing.T, testID string) int64 {
	questionIDs := f.db.Model(&model.Question{}).Select("id").Where("test_id = ?", testID)
	return f.count(t, &model.Answer{}, "question_id IN (?)", questionIDs)
}

func (f *fixture) resultCount(t *testing.T, testID, userID string) int64 {
	return f.count(t, &model.TestResult{}, "test_id = ? AND user_id = ?", testID, userID)
}

func strPtr(s string) *string { return &s }

func numPtr(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := KindOf(err); got != want {
		t.Fatalf("expected %s error, got %s (%v)", want, got, err)
	}
}
