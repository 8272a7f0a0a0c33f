// Package http реализует HTTP-обработчики и DTO поверх конфигурации бота.
package http

import "rfcbot/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type teamListResponse struct {
	Labels []string `json:"labels"`
}

type teamResponse struct {
	Label   string   `json:"label"`
	Name    string   `json:"name,omitempty"`
	Ping    string   `json:"ping,omitempty"`
	Members []string `json:"members"`
}

type behaviorResponse struct {
	Repo     string `json:"repo"`
	Close    bool   `json:"close"`
	Postpone bool   `json:"postpone"`
}

type reactionsResponse struct {
	Repo       string           `json:"repo"`
	Entity     string           `json:"entity"`
	Prohibited []model.Reaction `json:"prohibited"`
}
