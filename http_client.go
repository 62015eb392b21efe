package main

import (
	"net/http"
	"time"
)

const llmHTTPTimeout = 60 * time.Second

var llmHTTPClient = &http.Client{
	Timeout: llmHTTPTimeout,
}
