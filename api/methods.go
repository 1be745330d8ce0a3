package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"socialcal/shared"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
)

const defaultAnalyticsDays = 30

func (a *Api) doRequest(method, path string, query url.Values, reqBody, resBody interface{}) *shared.ApiError {
	serverUrl := a.host + path
	if len(query) > 0 {
		serverUrl += "?" + query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		err := shared.ValidateStruct(reqBody)
		if err != nil {
			return validationError("invalid request", err)
		}

		reqBytes, err := json.Marshal(reqBody)
		if err != nil {
			return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
		}
		body = bytes.NewBuffer(reqBytes)
	}

	request, err := http.NewRequest(method, serverUrl, body)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	reqId := uuid.New().String()
	request.Header.Set("X-Request-Id", reqId)

	start := time.Now()
	resp, err := a.client.Do(request)
	if err != nil {
		log.Printf("%s %s failed [%s]\n", method, path, reqId)
		return networkError(err)
	}
	defer resp.Body.Close()

	log.Printf("%s %s -> %d in %s [%s]\n", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), reqId)

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		apiErr := HandleApiError(resp, errorBody)
		if apiErr.Type == shared.ApiErrorTypeUnauthorized {
			a.handleUnauthorized()
		}
		return apiErr
	}

	if resBody == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(resBody)
	if err != nil {
		return validationError("error decoding response", err)
	}

	if a.debug {
		log.Printf("%s %s response:\n%s", method, path, spew.Sdump(resBody))
	}

	return nil
}

func (a *Api) Login(req shared.LoginRequest) (*shared.LoginResponse, *shared.ApiError) {
	var res shared.LoginResponse
	apiErr := a.doRequest(http.MethodPost, "/auth/login", nil, req, &res)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&res); err != nil {
		return nil, validationError("unexpected login response", err)
	}

	return &res, nil
}

func (a *Api) Register(req shared.RegisterRequest) (*shared.User, *shared.ApiError) {
	var user shared.User
	apiErr := a.doRequest(http.MethodPost, "/auth/register", nil, req, &user)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&user); err != nil {
		return nil, validationError("unexpected register response", err)
	}

	return &user, nil
}

func (a *Api) GetMe() (*shared.User, *shared.ApiError) {
	var user shared.User
	apiErr := a.doRequest(http.MethodGet, "/auth/me", nil, nil, &user)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&user); err != nil {
		return nil, validationError("unexpected user response", err)
	}

	return &user, nil
}

func (a *Api) ListAccounts() ([]*shared.SocialAccount, *shared.ApiError) {
	var accounts []*shared.SocialAccount
	apiErr := a.doRequest(http.MethodGet, "/accounts", nil, nil, &accounts)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateSlice(accounts); err != nil {
		return nil, validationError("unexpected accounts response", err)
	}

	return accounts, nil
}

func (a *Api) ConnectAccount(req shared.ConnectAccountRequest) (*shared.SocialAccount, *shared.ApiError) {
	var account shared.SocialAccount
	apiErr := a.doRequest(http.MethodPost, "/accounts", nil, req, &account)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&account); err != nil {
		return nil, validationError("unexpected account response", err)
	}

	return &account, nil
}

func (a *Api) DisconnectAccount(accountId int64) *shared.ApiError {
	return a.doRequest(http.MethodDelete, fmt.Sprintf("/accounts/%d", accountId), nil, nil, nil)
}

func (a *Api) GetDashboardAnalytics() (*shared.DashboardAnalytics, *shared.ApiError) {
	var res shared.DashboardAnalytics
	apiErr := a.doRequest(http.MethodGet, "/analytics/dashboard", nil, nil, &res)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&res); err != nil {
		return nil, validationError("unexpected analytics response", err)
	}

	return &res, nil
}

func (a *Api) GetAccountAnalytics(accountId int64, days int) ([]*shared.AnalyticsData, *shared.ApiError) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))

	var res []*shared.AnalyticsData
	apiErr := a.doRequest(http.MethodGet, fmt.Sprintf("/analytics/%d", accountId), query, nil, &res)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateSlice(res); err != nil {
		return nil, validationError("unexpected analytics response", err)
	}

	return res, nil
}

func (a *Api) ListInbox(filter shared.InboxFilter) ([]*shared.Message, *shared.ApiError) {
	var messages []*shared.Message
	apiErr := a.doRequest(http.MethodGet, "/inbox", filter.Query(), nil, &messages)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateSlice(messages); err != nil {
		return nil, validationError("unexpected inbox response", err)
	}

	return messages, nil
}

func (a *Api) GetInboxSummary() (*shared.InboxSummary, *shared.ApiError) {
	var summary shared.InboxSummary
	apiErr := a.doRequest(http.MethodGet, "/inbox/summary", nil, nil, &summary)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&summary); err != nil {
		return nil, validationError("unexpected inbox summary response", err)
	}

	return &summary, nil
}

func (a *Api) GetMessage(messageId int64) (*shared.Message, *shared.ApiError) {
	var message shared.Message
	apiErr := a.doRequest(http.MethodGet, fmt.Sprintf("/inbox/%d", messageId), nil, nil, &message)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&message); err != nil {
		return nil, validationError("unexpected message response", err)
	}

	return &message, nil
}

func (a *Api) UpdateMessage(messageId int64, req shared.UpdateMessageRequest) (*shared.Message, *shared.ApiError) {
	if req.Status == nil && req.IsPriority == nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: "nothing to update"}
	}

	var message shared.Message
	apiErr := a.doRequest(http.MethodPut, fmt.Sprintf("/inbox/%d", messageId), nil, req, &message)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&message); err != nil {
		return nil, validationError("unexpected message response", err)
	}

	return &message, nil
}

func (a *Api) MarkAllRead() *shared.ApiError {
	return a.doRequest(http.MethodPost, "/inbox/mark-all-read", nil, nil, nil)
}

func (a *Api) GetCalendar(r shared.CalendarRange) (*shared.CalendarView, *shared.ApiError) {
	var view shared.CalendarView
	apiErr := a.doRequest(http.MethodGet, "/calendar", r.Query(), nil, &view)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&view); err != nil {
		return nil, validationError("unexpected calendar response", err)
	}

	return &view, nil
}

func (a *Api) ListScheduledContent(filter shared.ScheduleFilter) ([]*shared.ScheduledContent, *shared.ApiError) {
	var items []*shared.ScheduledContent
	apiErr := a.doRequest(http.MethodGet, "/schedule", filter.Query(), nil, &items)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateSlice(items); err != nil {
		return nil, validationError("unexpected schedule response", err)
	}

	return items, nil
}

func (a *Api) CreateScheduledContent(req shared.CreateScheduledContentRequest) (*shared.ScheduledContent, *shared.ApiError) {
	var item shared.ScheduledContent
	apiErr := a.doRequest(http.MethodPost, "/schedule", nil, req, &item)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&item); err != nil {
		return nil, validationError("unexpected schedule response", err)
	}

	return &item, nil
}

func (a *Api) UpdateScheduledContent(scheduleId int64, req shared.UpdateScheduledContentRequest) (*shared.ScheduledContent, *shared.ApiError) {
	if req.IsEmpty() {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: "nothing to update"}
	}

	var item shared.ScheduledContent
	apiErr := a.doRequest(http.MethodPut, fmt.Sprintf("/schedule/%d", scheduleId), nil, req, &item)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := shared.ValidateStruct(&item); err != nil {
		return nil, validationError("unexpected schedule response", err)
	}

	return &item, nil
}

func (a *Api) DeleteScheduledContent(scheduleId int64) *shared.ApiError {
	return a.doRequest(http.MethodDelete, fmt.Sprintf("/schedule/%d", scheduleId), nil, nil, nil)
}

func (a *Api) GenerateDemoData() (*shared.MessageResponse, *shared.ApiError) {
	var res shared.MessageResponse
	apiErr := a.doRequest(http.MethodPost, "/demo/generate-data", nil, nil, &res)
	if apiErr != nil {
		return nil, apiErr
	}
	return &res, nil
}
