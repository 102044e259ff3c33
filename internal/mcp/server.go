package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/basket-md/basket/internal/database"
	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/usecase"
)

// Server exposes the basket use cases as MCP tools.
type Server struct {
	server *mcp.Server
	dbCtx  *database.Context
	basket *usecase.Basket
}

// NewServer opens the database at dbPath (the default location when empty)
// and registers the tools.
func NewServer(dbPath, version string) (*Server, error) {
	dbCtx, err := database.CreateDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	return newServer(dbCtx, version), nil
}

func newServer(dbCtx *database.Context, version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "basket",
		Version: version,
	}, nil)

	s := &Server{
		server: mcpServer,
		dbCtx:  dbCtx,
		basket: usecase.NewBasket(dbCtx),
	}
	s.registerTools()
	return s
}

// Run serves over stdio until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	defer database.CloseDatabase(s.dbCtx)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_create_list",
		Description: "Create a new shopping list",
	}, s.handleCreateList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_show_list",
		Description: "Show the items on a shopping list",
	}, s.handleShowList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_suggest",
		Description: "Suggest up to five items to add to a shopping list, based on staples, purchase frequency and items bought together",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_add_item",
		Description: "Add an item to a shopping list",
	}, s.handleAddItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_accept_suggestion",
		Description: "Add a suggested item to a shopping list",
	}, s.handleAcceptSuggestion)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_check_item",
		Description: "Check or uncheck an item on a shopping list",
	}, s.handleCheckItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_complete_trip",
		Description: "Finish a shopping trip and learn which checked items were bought together",
	}, s.handleCompleteTrip)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_list_staples",
		Description: "List staple items",
	}, s.handleListStaples)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_add_staple",
		Description: "Mark an item as a staple with a reminder frequency",
	}, s.handleAddStaple)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_update_staple",
		Description: "Change the name, department or frequency of a staple",
	}, s.handleUpdateStaple)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_remove_staple",
		Description: "Remove a staple",
	}, s.handleRemoveStaple)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "basket_list_departments",
		Description: "List the store departments items and staples can be filed under",
	}, s.handleListDepartments)
}

type ListRef struct {
	List string `json:"list" jsonschema:"Shopping list ID or name"`
}

type CreateListInput struct {
	Name string `json:"name" jsonschema:"Name of the new list"`
}

type ListOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ShowListOutput struct {
	List  ListOutput   `json:"list"`
	Items []ItemOutput `json:"items"`
}

type ItemOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId,omitempty"`
	Department   string `json:"department"`
	IsChecked    bool   `json:"isChecked"`
	CheckedAt    string `json:"checkedAt,omitempty"`
}

type SuggestionOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId,omitempty"`
	Department   string `json:"department"`
	Reason       string `json:"reason"`
	Details      string `json:"details"`
	Priority     int    `json:"priority"`
}

type SuggestOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
}

type AddItemInput struct {
	List         string `json:"list" jsonschema:"Shopping list ID or name"`
	Name         string `json:"name" jsonschema:"Item name"`
	DepartmentID string `json:"departmentId,omitempty" jsonschema:"Department ID or name, see basket_list_departments"`
}

type AcceptSuggestionInput struct {
	List       string `json:"list" jsonschema:"Shopping list ID or name"`
	Suggestion string `json:"suggestion" jsonschema:"Suggestion ID or item name, as returned by basket_suggest"`
}

type AcceptSuggestionOutput struct {
	Item       ItemOutput       `json:"item"`
	Suggestion SuggestionOutput `json:"suggestion"`
}

type CheckItemInput struct {
	List    string `json:"list" jsonschema:"Shopping list ID or name"`
	Item    string `json:"item" jsonschema:"Item ID or name"`
	Checked *bool  `json:"checked,omitempty" jsonschema:"Whether the item is checked (default true)"`
}

type CompleteTripOutput struct {
	Message string `json:"message"`
	Pairs   int    `json:"pairs"`
}

type ListStaplesInput struct{}

type StapleOutput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DepartmentID  string `json:"departmentId,omitempty"`
	Department    string `json:"department"`
	Frequency     string `json:"frequency"`
	LastPurchased string `json:"lastPurchased,omitempty"`
}

type ListStaplesOutput struct {
	Staples []StapleOutput `json:"staples"`
}

type AddStapleInput struct {
	Name         string `json:"name" jsonschema:"Staple item name"`
	DepartmentID string `json:"departmentId,omitempty" jsonschema:"Department ID or name, see basket_list_departments"`
	Frequency    string `json:"frequency" jsonschema:"Reminder frequency: always, weekly, biweekly or monthly"`
}

type UpdateStapleInput struct {
	Staple       string  `json:"staple" jsonschema:"Staple ID or name"`
	Name         *string `json:"name,omitempty" jsonschema:"New name"`
	DepartmentID *string `json:"departmentId,omitempty" jsonschema:"New department ID or name, empty to clear"`
	Frequency    *string `json:"frequency,omitempty" jsonschema:"New frequency: always, weekly, biweekly or monthly"`
}

type RemoveStapleInput struct {
	Staple string `json:"staple" jsonschema:"Staple ID or name"`
}

type ListDepartmentsInput struct{}

type DepartmentOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sortOrder"`
	IsDefault bool   `json:"isDefault"`
}

type ListDepartmentsOutput struct {
	Departments []DepartmentOutput `json:"departments"`
}

type MessageOutput struct {
	Message string `json:"message"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func toListOutput(list shopping.List) ListOutput {
	return ListOutput{
		ID:        list.ID,
		Name:      list.Name,
		CreatedAt: formatTime(list.CreatedAt),
		UpdatedAt: formatTime(list.UpdatedAt),
	}
}

func toItemOutput(item shopping.Item, departments shopping.DepartmentIndex) ItemOutput {
	return ItemOutput{
		ID:           item.ID,
		Name:         item.Name,
		DepartmentID: item.DepartmentID,
		Department:   departments.Label(item.DepartmentID),
		IsChecked:    item.IsChecked,
		CheckedAt:    formatOptionalTime(item.CheckedAt),
	}
}

func toSuggestionOutput(s shopping.Suggestion, departments shopping.DepartmentIndex) SuggestionOutput {
	return SuggestionOutput{
		ID:           s.ID,
		Name:         s.Name,
		DepartmentID: s.DepartmentID,
		Department:   departments.Label(s.DepartmentID),
		Reason:       string(s.Reason),
		Details:      s.Details,
		Priority:     s.Priority,
	}
}

func toStapleOutput(s shopping.Staple, departments shopping.DepartmentIndex) StapleOutput {
	return StapleOutput{
		ID:            s.ID,
		Name:          s.Name,
		DepartmentID:  s.DepartmentID,
		Department:    departments.Label(s.DepartmentID),
		Frequency:     string(s.Frequency),
		LastPurchased: formatOptionalTime(s.LastPurchased),
	}
}

func (s *Server) departmentIndex(ctx context.Context) (shopping.DepartmentIndex, error) {
	departments, err := s.basket.DepartmentIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	return departments, nil
}

// Tool handlers

func (s *Server) handleCreateList(ctx context.Context, req *mcp.CallToolRequest, input CreateListInput) (*mcp.CallToolResult, ListOutput, error) {
	list, err := s.basket.CreateList(ctx, input.Name)
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to create list: %w", err)
	}
	return nil, toListOutput(*list), nil
}

func (s *Server) handleShowList(ctx context.Context, req *mcp.CallToolRequest, input ListRef) (*mcp.CallToolResult, ShowListOutput, error) {
	list, items, err := s.basket.ShowList(ctx, input.List)
	if err != nil {
		return nil, ShowListOutput{}, fmt.Errorf("failed to show list: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, ShowListOutput{}, err
	}

	out := ShowListOutput{List: toListOutput(*list), Items: make([]ItemOutput, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, toItemOutput(item, departments))
	}
	return nil, out, nil
}

func (s *Server) handleSuggest(ctx context.Context, req *mcp.CallToolRequest, input ListRef) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.basket.Suggest(ctx, input.List)
	if err != nil {
		return nil, SuggestOutput{}, fmt.Errorf("failed to suggest: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	out := SuggestOutput{Suggestions: make([]SuggestionOutput, 0, len(suggestions))}
	for _, suggestion := range suggestions {
		out.Suggestions = append(out.Suggestions, toSuggestionOutput(suggestion, departments))
	}
	return nil, out, nil
}

func (s *Server) handleAddItem(ctx context.Context, req *mcp.CallToolRequest, input AddItemInput) (*mcp.CallToolResult, ItemOutput, error) {
	item, err := s.basket.AddItem(ctx, input.List, input.Name, input.DepartmentID)
	if err != nil {
		return nil, ItemOutput{}, fmt.Errorf("failed to add item: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, ItemOutput{}, err
	}
	return nil, toItemOutput(*item, departments), nil
}

func (s *Server) handleAcceptSuggestion(ctx context.Context, req *mcp.CallToolRequest, input AcceptSuggestionInput) (*mcp.CallToolResult, AcceptSuggestionOutput, error) {
	item, suggestion, err := s.basket.AcceptSuggestion(ctx, input.List, input.Suggestion)
	if err != nil {
		return nil, AcceptSuggestionOutput{}, fmt.Errorf("failed to accept suggestion: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, AcceptSuggestionOutput{}, err
	}
	return nil, AcceptSuggestionOutput{
		Item:       toItemOutput(*item, departments),
		Suggestion: toSuggestionOutput(*suggestion, departments),
	}, nil
}

func (s *Server) handleCheckItem(ctx context.Context, req *mcp.CallToolRequest, input CheckItemInput) (*mcp.CallToolResult, ItemOutput, error) {
	checked := true
	if input.Checked != nil {
		checked = *input.Checked
	}

	item, err := s.basket.CheckItem(ctx, input.List, input.Item, checked)
	if err != nil {
		return nil, ItemOutput{}, fmt.Errorf("failed to check item: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, ItemOutput{}, err
	}
	return nil, toItemOutput(*item, departments), nil
}

func (s *Server) handleCompleteTrip(ctx context.Context, req *mcp.CallToolRequest, input ListRef) (*mcp.CallToolResult, CompleteTripOutput, error) {
	pairs, err := s.basket.CompleteTrip(ctx, input.List)
	if err != nil {
		return nil, CompleteTripOutput{}, fmt.Errorf("failed to complete trip: %w", err)
	}
	return nil, CompleteTripOutput{
		Message: fmt.Sprintf("Recorded %d item pair(s)", pairs),
		Pairs:   pairs,
	}, nil
}

func (s *Server) handleListStaples(ctx context.Context, req *mcp.CallToolRequest, input ListStaplesInput) (*mcp.CallToolResult, ListStaplesOutput, error) {
	staples, err := s.basket.Staples(ctx)
	if err != nil {
		return nil, ListStaplesOutput{}, fmt.Errorf("failed to list staples: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, ListStaplesOutput{}, err
	}

	out := ListStaplesOutput{Staples: make([]StapleOutput, 0, len(staples))}
	for _, staple := range staples {
		out.Staples = append(out.Staples, toStapleOutput(staple, departments))
	}
	return nil, out, nil
}

func (s *Server) handleAddStaple(ctx context.Context, req *mcp.CallToolRequest, input AddStapleInput) (*mcp.CallToolResult, StapleOutput, error) {
	staple, err := s.basket.AddStaple(ctx, input.Name, input.DepartmentID, input.Frequency)
	if err != nil {
		return nil, StapleOutput{}, fmt.Errorf("failed to add staple: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, StapleOutput{}, err
	}
	return nil, toStapleOutput(staple, departments), nil
}

func (s *Server) handleUpdateStaple(ctx context.Context, req *mcp.CallToolRequest, input UpdateStapleInput) (*mcp.CallToolResult, StapleOutput, error) {
	update := shopping.StapleUpdate{Name: input.Name, DepartmentID: input.DepartmentID}
	if input.Frequency != nil {
		f, err := shopping.ParseFrequency(*input.Frequency)
		if err != nil {
			return nil, StapleOutput{}, err
		}
		update.Frequency = &f
	}

	staple, err := s.basket.UpdateStaple(ctx, input.Staple, update)
	if err != nil {
		return nil, StapleOutput{}, fmt.Errorf("failed to update staple: %w", err)
	}
	departments, err := s.departmentIndex(ctx)
	if err != nil {
		return nil, StapleOutput{}, err
	}
	return nil, toStapleOutput(*staple, departments), nil
}

func (s *Server) handleRemoveStaple(ctx context.Context, req *mcp.CallToolRequest, input RemoveStapleInput) (*mcp.CallToolResult, MessageOutput, error) {
	staple, err := s.basket.RemoveStaple(ctx, input.Staple)
	if err != nil {
		return nil, MessageOutput{}, fmt.Errorf("failed to remove staple: %w", err)
	}
	return nil, MessageOutput{Message: fmt.Sprintf("Removed staple '%s'", staple.Name)}, nil
}

func (s *Server) handleListDepartments(ctx context.Context, req *mcp.CallToolRequest, input ListDepartmentsInput) (*mcp.CallToolResult, ListDepartmentsOutput, error) {
	departments, err := s.basket.Departments(ctx)
	if err != nil {
		return nil, ListDepartmentsOutput{}, fmt.Errorf("failed to list departments: %w", err)
	}

	out := ListDepartmentsOutput{Departments: make([]DepartmentOutput, 0, len(departments))}
	for _, d := range departments {
		out.Departments = append(out.Departments, DepartmentOutput(d))
	}
	return nil, out, nil
}
