package seed

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	"github.com/acmecollege/registrar/internal/pkg/logger"
	"github.com/acmecollege/registrar/internal/services"
)

type Result struct {
	Courses       int
	Professors    int
	Students      int
	Registrations int
	Skipped       bool
}

type Runner struct {
	db      *gorm.DB
	log     *logger.Logger
	college services.CollegeService
	regs    services.RegistrationService
}

func NewRunner(db *gorm.DB, baseLog *logger.Logger, college services.CollegeService, regs services.RegistrationService) *Runner {
	return &Runner{
		db:      db,
		log:     baseLog.With("component", "SeedRunner"),
		college: college,
		regs:    regs,
	}
}

// Run writes sc into the store. A store that already holds registrations is
// left untouched.
func (r *Runner) Run(dbc dbctx.Context, sc *Scenario) (Result, error) {
	var res Result
	if sc == nil {
		return res, fmt.Errorf("seed: nil scenario")
	}
	existing, err := r.regs.Count(dbc)
	if err != nil {
		return res, fmt.Errorf("seed: count registrations: %w", err)
	}
	if existing > 0 {
		r.log.Info("Store already seeded; skipping", "scenario", sc.Name, "registrations", existing)
		res.Skipped = true
		return res, nil
	}

	// one unit of work: a failure leaves nothing behind, so a rerun starts clean
	var applied Result
	err = dbc.Conn(r.db).Transaction(func(tx *gorm.DB) error {
		inner := dbc.WithTx(tx)
		applied = Result{}

		courses := make(map[string]*types.Course, len(sc.Courses))
		for _, spec := range sc.Courses {
			term, _ := types.ParseTerm(spec.Term)
			c := (&types.Course{}).SetCourse(strings.TrimSpace(spec.Code), spec.Title, spec.Year, term, spec.CreditUnits, spec.Online)
			if err := r.college.CreateCourse(inner, c); err != nil {
				return fmt.Errorf("seed: course %s: %w", c.Code, err)
			}
			courses[c.Code] = c
			applied.Courses++
		}

		professors := make(map[string]*types.Professor, len(sc.Professors))
		for _, spec := range sc.Professors {
			p := (&types.Professor{}).SetProfessor(spec.FirstName, spec.LastName, spec.Department)
			if err := r.college.CreateProfessor(inner, p); err != nil {
				return fmt.Errorf("seed: professor %s: %w", spec.Ref, err)
			}
			professors[strings.TrimSpace(spec.Ref)] = p
			applied.Professors++
		}

		students := make(map[string]*types.Student, len(sc.Students))
		for _, spec := range sc.Students {
			s := (&types.Student{}).SetFullName(spec.FirstName, spec.LastName)
			if err := r.college.CreateStudent(inner, s); err != nil {
				return fmt.Errorf("seed: student %s: %w", spec.Ref, err)
			}
			students[strings.TrimSpace(spec.Ref)] = s
			applied.Students++
		}

		for _, spec := range sc.Registrations {
			reg := (&types.CourseRegistration{}).
				SetStudent(students[strings.TrimSpace(spec.Student)]).
				SetCourse(courses[strings.TrimSpace(spec.Course)]).
				SetLetterGrade(spec.LetterGrade).
				SetNumericGrade(spec.NumericGrade)
			if ref := strings.TrimSpace(spec.Professor); ref != "" {
				reg.SetProfessor(professors[ref])
			}
			if err := r.regs.Insert(inner, reg); err != nil {
				return fmt.Errorf("seed: registration %s/%s: %w", spec.Student, spec.Course, err)
			}
			applied.Registrations++
		}
		return nil
	})
	if err != nil {
		r.log.Warn("Seed scenario rolled back", "scenario", sc.Name, "error", err)
		return Result{}, err
	}
	res = applied

	r.log.Info("Seed scenario applied",
		"scenario", sc.Name,
		"courses", res.Courses,
		"professors", res.Professors,
		"students", res.Students,
		"registrations", res.Registrations,
	)
	return res, nil
}
