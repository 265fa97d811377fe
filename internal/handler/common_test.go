package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"

	"eventboard/internal/handler"
	"eventboard/internal/service/mocks"

	"github.com/gin-gonic/gin"
)

var InvalidJSON = `{"invalid": json}`

func setupEventTestRouter(mockService *mocks.EventServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventHandler := handler.NewEventHandler(mockService)
	eventHandler.RegisterRoutes(router)

	return router
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}
