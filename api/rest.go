package api

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"autivision/auth"
	"autivision/service"
	"autivision/storage"
)

type Credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type SingleResponse struct {
	Result             string `json:"result,omitempty"`
	Message            string `json:"message"`
	PercentAutistic    string `json:"percent_autistic,omitempty"`
	PercentNonAutistic string `json:"percent_non_autistic,omitempty"`
}

type BatchResponse struct {
	AnalysisID        string    `json:"analysis_id"`
	AnalysisTimestamp time.Time `json:"analysis_timestamp"`
	Class0Images      []string  `json:"class_0_images"`
	Class1Images      []string  `json:"class_1_images"`
}

// Server wires the screening and auth services into the HTTP surface.
// Authentication is a session cookie; handlers behind requireLogin trust the
// session's identity and do no further authorization.
type Server struct {
	auth      *auth.Service
	screening *service.Screening
	sessions  *session.Store
}

func NewServer(authSvc *auth.Service, screening *service.Screening) *Server {
	sessions := session.New(session.Config{
		KeyLookup:      "cookie:autivision_session",
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
	})
	return &Server{
		auth:      authSvc,
		screening: screening,
		sessions:  sessions,
	}
}

// Register mounts all routes on the app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/health", s.handleHealth)
	app.Get("/", s.handlePage("home"))
	app.Get("/about", s.handlePage("about"))
	app.Get("/contact", s.handlePage("contact"))

	app.Get("/register", s.handlePage("register"))
	app.Post("/register", s.handleRegister)
	app.Get("/login", s.handlePage("login"))
	app.Post("/login", s.handleLogin)
	app.All("/logout", s.requireLogin, s.handleLogout)

	app.Get("/dashboard", s.requireLogin, s.handlePage("dashboard"))
	app.Post("/dashboard", s.requireLogin, s.handleClassifyOne)
	app.Get("/dashboard_2", s.requireLogin, s.handleBatchListing)
	app.Post("/dashboard_2", s.requireLogin, s.handleClassifyBatch)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// handlePage stands in for the rendered pages, which belong to the frontend.
func (s *Server) handlePage(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": name})
	}
}

func (s *Server) requireLogin(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil || sess.Get("user_id") == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "login required",
		})
	}
	return c.Next()
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var creds Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := s.auth.Register(c.UserContext(), creds.Username, creds.Password); err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Message,
			})
		}
		log.Printf("register: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "registration failed",
		})
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var creds Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := s.auth.Login(c.UserContext(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": auth.ErrInvalidCredentials.Error(),
			})
		}
		log.Printf("login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "login failed",
		})
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		log.Printf("login: session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "login failed",
		})
	}
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	if err := sess.Save(); err != nil {
		log.Printf("login: session save: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "login failed",
		})
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("logout: %v", err)
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) handleClassifyOne(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(SingleResponse{Message: "No file part"})
	}
	if fileHeader.Filename == "" {
		return c.JSON(SingleResponse{Message: "No selected file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	result, err := s.screening.ClassifyOne(c.UserContext(), data)
	if err != nil {
		if service.IsUserError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(SingleResponse{
				Message: "File is not a valid image",
			})
		}
		log.Printf("classify %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "classification failed",
		})
	}

	return c.JSON(SingleResponse{
		Result:             result.Display,
		Message:            "File uploaded successfully",
		PercentAutistic:    result.PercentAutistic,
		PercentNonAutistic: result.PercentNonAutistic,
	})
}

func (s *Server) handleClassifyBatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse form",
		})
	}

	files := form.File["images[]"]
	uploads := make([]service.Upload, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to open file",
			})
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read file",
			})
		}
		uploads = append(uploads, service.Upload{Name: fh.Filename, Data: data})
	}

	result, err := s.screening.RunBatch(c.UserContext(), uploads)
	if err != nil {
		var storeErr *storage.StoreError
		if errors.As(err, &storeErr) {
			log.Printf("batch: %v", storeErr)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": storeErr.Error(),
			})
		}
		log.Printf("batch: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "batch classification failed",
		})
	}

	return c.JSON(BatchResponse{
		AnalysisID:        result.AnalysisID,
		AnalysisTimestamp: result.AnalysisTimestamp,
		Class0Images:      result.Class0Images,
		Class1Images:      result.Class1Images,
	})
}

// handleBatchListing reports what the working directory currently holds, the
// data the batch page renders.
func (s *Server) handleBatchListing(c *fiber.Ctx) error {
	images, err := s.screening.ListStored()
	if err != nil {
		log.Printf("listing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list images",
		})
	}
	return c.JSON(fiber.Map{"images": images})
}
