package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shaban/models"
	"shaban/pkg/plate"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)
	r.POST("/api/ocr", ocrHandler)
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/me", meHandler)
	authGroup.GET("/scans", listScansHandler)
	authGroup.GET("/scans/export", exportScansHandler)
}

// healthHandler reports service and engine availability, mirroring what
// frontends poll before offering the camera flow.
func healthHandler(c *gin.Context) {
	if ocrEngine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":           "degraded",
			"engine_available": false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"engine":           ocrEngine.Name(),
		"engine_available": true,
		"message":          "plate recognition service running",
	})
}

// ocrHandler runs the full pipeline: base64 decode -> image decode ->
// recognition -> normalize -> parse. Pipeline failures become a structured
// success:false payload, never an unhandled fault.
func ocrHandler(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Image) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no image data provided"})
		return
	}
	raw, err := decodeImagePayload(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid base64 image data", "detected_text": "", "confidence": 0})
		return
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "could not decode image: " + err.Error(), "detected_text": "", "confidence": 0})
		return
	}

	lines, err := ocrEngine.Recognize(c.Request.Context(), img)
	if err != nil {
		log.Printf("recognition failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error(), "detected_text": "", "confidence": 0})
		return
	}
	text := plate.Normalize(lines, cfg.MinConfidence)
	rec := parser.get().Parse(text)

	recordScan(c, rec, raw)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"detected_text": rec.FullText,
		"plate_info":    rec,
		"confidence":    ocrEngine.Confidence(),
		"ocr_engine":    ocrEngine.Name(),
		"message":       "recognition completed",
	})
}

// decodeImagePayload strips an optional data-URI prefix and base64-decodes
// the image payload.
func decodeImagePayload(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:image") {
		if i := strings.IndexByte(s, ','); i != -1 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(s)
}

// recordScan persists the outcome when a database is configured. Best-effort:
// failures are logged and never surfaced to the OCR caller.
func recordScan(c *gin.Context, rec plate.Record, raw []byte) {
	if db == nil {
		return
	}
	scan := models.Scan{
		Engine:         ocrEngine.Name(),
		DetectedText:   rec.FullText,
		Region:         rec.Region,
		Classification: rec.Classification,
		Hiragana:       rec.Hiragana,
		Number:         rec.Number,
		Confidence:     ocrEngine.Confidence(),
	}
	if cfg.ScanImageDir != "" {
		if p, err := storeScanImage(raw); err != nil {
			log.Printf("could not retain scan image: %v", err)
		} else {
			scan.ImagePath = p
		}
	}
	if uid, ok := optionalUserID(c); ok {
		scan.UserID = &uid
	}
	if err := db.Create(&scan).Error; err != nil {
		log.Printf("could not record scan: %v", err)
	}
}

// storeScanImage writes the received image bytes under SCAN_IMAGE_DIR with a
// random name and an extension matching the sniffed content type.
func storeScanImage(raw []byte) (string, error) {
	ext := ".bin"
	switch http.DetectContentType(raw) {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	}
	path := filepath.Join(cfg.ScanImageDir, uuid.NewString()+ext)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// optionalUserID resolves the caller's user id when a valid bearer token is
// present. The OCR route is public, so a missing or bad token is not an error.
func optionalUserID(c *gin.Context) (uint, bool) {
	username, err := usernameFromAuthHeader(c.GetHeader("Authorization"))
	if err != nil || db == nil {
		return 0, false
	}
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return 0, false
	}
	return user.ID, true
}

func usernameFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return "", fmt.Errorf("missing or invalid Authorization header")
	}
	token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return "", fmt.Errorf("invalid claims")
	}
	return username, nil
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := usernameFromAuthHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("username", username)
		c.Next()
	}
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := RegisterUser(req.Username, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registered"})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

func meHandler(c *gin.Context) {
	usernameVal, _ := c.Get("username")
	if usernameVal == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing username"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": usernameVal.(string)})
}

// getUserFromContext fetches the authenticated user set by jwtAuthMiddleware
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	unameVal, _ := c.Get("username")
	if unameVal == nil || db == nil {
		return nil, false
	}
	var user models.User
	if err := db.Where("username = ?", unameVal.(string)).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func listScansHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var scans []models.Scan
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Limit(200).Find(&scans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": scans})
}

func exportScansHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var scans []models.Scan
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&scans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scans"})
		return
	}
	data, err := buildScansXLSX(scans)
	if err != nil {
		log.Printf("xlsx export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	name := fmt.Sprintf("scans-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
