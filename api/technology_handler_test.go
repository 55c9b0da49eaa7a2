package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbriand/portfolio-backend/models"
)

func TestCreateTechnologyJSON(t *testing.T) {
	f := newRouterFixture()

	recorder := f.do(t, http.MethodPost, "/technology/", testAdminToken, []byte(`{"name":"Go"}`))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Technology
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "Go", created.Name)
	assert.Nil(t, created.Image)
}

func TestCreateTechnologyMultipart(t *testing.T) {
	f := newRouterFixture()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Go"))
	part, err := writer.CreateFormFile("image", "gopher.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/technology/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Token "+testAdminToken)

	recorder := f.doRequest(t, req)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Technology
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "Go", created.Name)
	require.NotNil(t, created.Image)
	assert.Contains(t, *created.Image, "technologies/")
}

func TestCreateTechnologyEmptyName(t *testing.T) {
	f := newRouterFixture()

	recorder := f.do(t, http.MethodPost, "/technology/", testAdminToken, []byte(`{"name":""}`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, f.technologies.items)
}

func TestUpdateTechnology(t *testing.T) {
	f := newRouterFixture()

	technology := &models.Technology{Name: "Go"}
	require.NoError(t, f.technologies.Add(technology))

	recorder := f.do(t, http.MethodPatch, "/technology/"+technology.ID.String(), testAdminToken, []byte(`{"name":"Golang"}`))
	require.Equal(t, http.StatusOK, recorder.Code)

	stored, err := f.technologies.FindByID(technology.ID)
	require.NoError(t, err)
	assert.Equal(t, "Golang", stored.Name)
}

func TestDeleteTechnologyReleasesImage(t *testing.T) {
	f := newRouterFixture()

	image := "https://media.test/technologies/logo"
	technology := &models.Technology{Name: "Go", Image: &image}
	require.NoError(t, f.technologies.Add(technology))

	recorder := f.do(t, http.MethodDelete, "/technology/"+technology.ID.String(), testAdminToken, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, f.technologies.items)
	assert.Equal(t, []string{image}, f.media.releases)
}

func TestGetTechnologiesIsPublic(t *testing.T) {
	f := newRouterFixture()
	require.NoError(t, f.technologies.Add(&models.Technology{Name: "Go"}))

	recorder := f.do(t, http.MethodGet, "/technology/", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var technologies []models.Technology
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &technologies))
	assert.Len(t, technologies, 1)
}
