package services

import (
	"context"
	"fmt"
	"io"
	"net/mail"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/models"
)

// Repository contracts the content service needs from the database layer.
// The gorm repos in the database package satisfy them; tests use fakes.

type TechnologyRepository interface {
	FindAll() ([]*models.Technology, error)
	FindByID(id uuid.UUID) (*models.Technology, error)
	Add(technology *models.Technology) error
	Update(technology *models.Technology) error
	Delete(id uuid.UUID) error
}

type SkillRepository interface {
	FindAll() ([]*models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uuid.UUID) error
}

type ProjectRepository interface {
	FindAll() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	ReplaceTechnologies(project *models.Project, technologies []models.Technology) error
	Delete(id uuid.UUID) error
}

type ReviewRepository interface {
	FindAll() ([]*models.Review, error)
	FindModified() ([]*models.Review, error)
	FindByID(id uuid.UUID) (*models.Review, error)
	FindByUpdateCode(code string) (*models.Review, error)
	FindByProjectID(projectID uuid.UUID) (*models.Review, error)
	Add(review *models.Review) error
	Update(review *models.Review) error
	Delete(id uuid.UUID) error
}

// MediaStore is the remote image host. Upload returns a stable public
// reference; Release frees the asset (the host never garbage-collects).
type MediaStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Release(ctx context.Context, ref string) error
}

// Mailer delivers a notification synchronously. A failure is fatal to the
// persist that triggered it.
type Mailer interface {
	Send(subject, body string, recipients []string) error
}

// Content owns the validate-then-write lifecycle of all four entities and
// the side effects that creation triggers.
type Content struct {
	technologies TechnologyRepository
	skills       SkillRepository
	projects     ProjectRepository
	reviews      ReviewRepository
	media        MediaStore
	mailer       Mailer
	ownerEmail   string
}

func NewContent(
	technologies TechnologyRepository,
	skills SkillRepository,
	projects ProjectRepository,
	reviews ReviewRepository,
	media MediaStore,
	mailer Mailer,
	ownerEmail string,
) *Content {
	return &Content{
		technologies: technologies,
		skills:       skills,
		projects:     projects,
		reviews:      reviews,
		media:        media,
		mailer:       mailer,
		ownerEmail:   ownerEmail,
	}
}

// ---- technologies ----

func (c *Content) ListTechnologies() ([]*models.Technology, error) {
	return c.technologies.FindAll()
}

func (c *Content) GetTechnology(id uuid.UUID) (*models.Technology, error) {
	return c.technologies.FindByID(id)
}

// CreateTechnology validates and inserts a technology. When an image is
// supplied it is pushed to the media store first so the stored row carries
// the final reference.
func (c *Content) CreateTechnology(ctx context.Context, technology *models.Technology, image io.Reader, imageType string) error {
	if err := technology.Validate(); err != nil {
		return err
	}
	if image != nil {
		ref, err := c.media.Upload(ctx, mediaKey("technologies"), image, imageType)
		if err != nil {
			return errs.NewDelegatedError("media store", err)
		}
		technology.Image = &ref
	}
	return c.technologies.Add(technology)
}

func (c *Content) UpdateTechnology(ctx context.Context, technology *models.Technology, image io.Reader, imageType string) error {
	if err := technology.Validate(); err != nil {
		return err
	}
	previous := technology.Image
	if image != nil {
		ref, err := c.media.Upload(ctx, mediaKey("technologies"), image, imageType)
		if err != nil {
			return errs.NewDelegatedError("media store", err)
		}
		technology.Image = &ref
	}
	if err := c.technologies.Update(technology); err != nil {
		return err
	}
	if image != nil && previous != nil {
		if err := c.media.Release(ctx, *previous); err != nil {
			return errs.NewDelegatedError("media store", err)
		}
	}
	return nil
}

// DeleteTechnology releases the remote image before dropping the row.
// Dependent skills are removed by the cascading foreign key.
func (c *Content) DeleteTechnology(ctx context.Context, id uuid.UUID) error {
	technology, err := c.technologies.FindByID(id)
	if err != nil {
		return err
	}
	if technology.Image != nil {
		if err := c.media.Release(ctx, *technology.Image); err != nil {
			return errs.NewDelegatedError("media store", err)
		}
	}
	return c.technologies.Delete(id)
}

// ---- skills ----

func (c *Content) ListSkills() ([]*models.Skill, error) {
	return c.skills.FindAll()
}

func (c *Content) GetSkill(id uuid.UUID) (*models.Skill, error) {
	return c.skills.FindByID(id)
}

func (c *Content) CreateSkill(skill *models.Skill) error {
	if err := skill.Validate(); err != nil {
		return err
	}
	return c.skills.Add(skill)
}

func (c *Content) UpdateSkill(skill *models.Skill) error {
	if err := skill.Validate(); err != nil {
		return err
	}
	return c.skills.Update(skill)
}

func (c *Content) DeleteSkill(id uuid.UUID) error {
	if _, err := c.skills.FindByID(id); err != nil {
		return err
	}
	return c.skills.Delete(id)
}

// ---- projects ----

func (c *Content) ListProjects() ([]*models.Project, error) {
	return c.projects.FindAll()
}

func (c *Content) GetProject(id uuid.UUID) (*models.Project, error) {
	return c.projects.FindByID(id)
}

// CreateProject validates and inserts the project, then creates its single
// companion review: author set to the project's client, message empty. The
// two writes are sequential, not one transaction; a crash in between leaves
// a project without a companion, which is accepted.
func (c *Content) CreateProject(project *models.Project, technologyIDs []uuid.UUID) error {
	if err := project.Validate(); err != nil {
		return err
	}
	if err := c.projects.Add(project); err != nil {
		return err
	}
	if len(technologyIDs) > 0 {
		if err := c.linkTechnologies(project, technologyIDs); err != nil {
			return err
		}
	}

	author := ""
	if project.Client != nil {
		author = *project.Client
	}
	companion := &models.Review{
		Author:    author,
		ProjectID: &project.ID,
	}
	return c.CreateReview(companion)
}

// UpdateProject re-validates and saves. It never touches the companion
// review; technology links are replaced only when a set is supplied.
func (c *Content) UpdateProject(project *models.Project, technologyIDs []uuid.UUID) error {
	if err := project.Validate(); err != nil {
		return err
	}
	if err := c.projects.Update(project); err != nil {
		return err
	}
	if technologyIDs != nil {
		return c.linkTechnologies(project, technologyIDs)
	}
	return nil
}

func (c *Content) linkTechnologies(project *models.Project, ids []uuid.UUID) error {
	technologies := make([]models.Technology, 0, len(ids))
	for _, id := range ids {
		technology, err := c.technologies.FindByID(id)
		if err != nil {
			if errs.IsNotFound(err) {
				return errs.NewBadRequestError(fmt.Sprintf("unknown technology %s", id))
			}
			return err
		}
		technologies = append(technologies, *technology)
	}
	return c.projects.ReplaceTechnologies(project, technologies)
}

// UploadProjectImage stores the new asset, persists its reference, and only
// then releases the previous one.
func (c *Content) UploadProjectImage(ctx context.Context, id uuid.UUID, body io.Reader, contentType string) (*models.Project, error) {
	project, err := c.projects.FindByID(id)
	if err != nil {
		return nil, err
	}
	previous := project.Image
	ref, err := c.media.Upload(ctx, mediaKey("projects"), body, contentType)
	if err != nil {
		return nil, errs.NewDelegatedError("media store", err)
	}
	project.Image = &ref
	if err := c.UpdateProject(project, nil); err != nil {
		return nil, err
	}
	if previous != nil {
		if err := c.media.Release(ctx, *previous); err != nil {
			return nil, errs.NewDelegatedError("media store", err)
		}
	}
	return project, nil
}

func (c *Content) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := c.projects.FindByID(id)
	if err != nil {
		return err
	}
	if project.Image != nil {
		if err := c.media.Release(ctx, *project.Image); err != nil {
			return errs.NewDelegatedError("media store", err)
		}
	}
	return c.projects.Delete(id)
}

// ProjectReview returns the companion review of a project.
func (c *Content) ProjectReview(projectID uuid.UUID) (*models.Review, error) {
	return c.reviews.FindByProjectID(projectID)
}

// ---- reviews ----

func (c *Content) ListReviews() ([]*models.Review, error) {
	return c.reviews.FindModified()
}

func (c *Content) ListAllReviews() ([]*models.Review, error) {
	return c.reviews.FindAll()
}

// CreateReview validates, assigns the update code (only when none exists, so
// it is generated exactly once per review) and inserts the row, then mails
// the code to the site owner. The mail transport is synchronous and its
// failure aborts the call.
func (c *Content) CreateReview(review *models.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	if review.UpdateCode == "" {
		review.UpdateCode = uuid.NewString()
	}
	if err := c.reviews.Add(review); err != nil {
		return err
	}

	if c.ownerEmail == "" {
		log.Warn().Msg("OWNER_EMAIL not configured, skipping review notification")
		return nil
	}
	body := fmt.Sprintf(
		"A review has been created for %q.<br>Its update code is: <b>%s</b>",
		review.Author, review.UpdateCode)
	if err := c.mailer.Send("New review created", body, []string{c.ownerEmail}); err != nil {
		return errs.NewDelegatedError("mail transport", err)
	}
	return nil
}

// UpdateReview re-validates and saves. Modified is set on every successful
// update and never reverts; the update code is left untouched.
func (c *Content) UpdateReview(review *models.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	review.Modified = true
	return c.reviews.Update(review)
}

// ReviewByCode is the self-service lookup. An unmatched code is a 404-class
// error; the "no code supplied" 403 is decided before this point.
func (c *Content) ReviewByCode(code string) (*models.Review, error) {
	return c.reviews.FindByUpdateCode(code)
}

func (c *Content) DeleteReview(id uuid.UUID) error {
	if _, err := c.reviews.FindByID(id); err != nil {
		return err
	}
	return c.reviews.Delete(id)
}

// ---- contact form ----

// SendContactMail relays a visitor message to the site owner.
func (c *Content) SendContactMail(name, email, subject, message string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValidationError("email", "A valid email address is required.")
	}
	if name == "" || subject == "" || message == "" {
		return errs.NewValidationError("message", "Name, subject and message are required.")
	}
	if c.ownerEmail == "" {
		return errs.NewInternalError("no owner email configured")
	}
	body := fmt.Sprintf("From: %s &lt;%s&gt;<br><br>%s", name, email, message)
	if err := c.mailer.Send(subject, body, []string{c.ownerEmail}); err != nil {
		return errs.NewDelegatedError("mail transport", err)
	}
	return nil
}

// mediaKey builds a collision-free storage key under the given prefix.
func mediaKey(prefix string) string {
	return fmt.Sprintf("%s/%s", prefix, uuid.NewString())
}
