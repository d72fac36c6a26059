package adminshell

import (
	"context"
	"errors"
	"testing"

	content "github.com/onebuyai/go-sitecms/components/content"
)

type fakeClient struct {
	createCalls int
	updateCalls int
	deleteCalls int
	seedCalls   int
	lastPayload map[string]any
	lastVersion int64
	createErr   error
	updateErr   error
	deleteErr   error
}

func (f *fakeClient) Create(_ context.Context, resource string, payload map[string]any) error {
	f.createCalls++
	f.lastPayload = payload
	return f.createErr
}

func (f *fakeClient) Update(_ context.Context, resource, id string, payload map[string]any, version int64) error {
	f.updateCalls++
	f.lastPayload = payload
	f.lastVersion = version
	return f.updateErr
}

func (f *fakeClient) Delete(_ context.Context, resource, id string) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeClient) Seed(_ context.Context, resource string) error {
	f.seedCalls++
	return nil
}

type fakeNotifier struct {
	levels   []string
	messages []string
}

func (f *fakeNotifier) Notify(level, message string) {
	f.levels = append(f.levels, level)
	f.messages = append(f.messages, message)
}

func testManager(t *testing.T, client *fakeClient, fetcher *fakeFetcher, notifier Notifier) (*Manager, *Shell) {
	t.Helper()
	def := content.ResourceDefinition{
		Code:      "products",
		Name:      "Products",
		Orderable: true,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name"},
		},
	}
	shell, err := NewShell(fetcher, testShellRegistry(t, "products"))
	if err != nil {
		t.Fatalf("NewShell returned error: %v", err)
	}
	manager, err := NewManager(ManagerOptions{
		Definition: def,
		Client:     client,
		Shell:      shell,
		Notifier:   notifier,
	})
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	return manager, shell
}

func TestSaveRejectsMissingFieldsLocally(t *testing.T) {
	client := &fakeClient{}
	notifier := &fakeNotifier{}
	manager, _ := testManager(t, client, newFakeFetcher(), notifier)

	manager.OpenCreate()
	manager.SetField("description", "no name yet")
	if err := manager.Save(context.Background()); err == nil {
		t.Fatalf("expected validation error")
	}
	if client.createCalls != 0 {
		t.Fatalf("validation failure must send nothing")
	}
	if len(notifier.levels) != 1 || notifier.levels[0] != "error" {
		t.Fatalf("expected one error notification, got %v", notifier.levels)
	}
	if !manager.DialogOpen() {
		t.Fatalf("dialog must stay open")
	}
}

func TestSaveCreateClosesDialogAndRefreshesOnce(t *testing.T) {
	client := &fakeClient{}
	fetcher := newFakeFetcher()
	manager, _ := testManager(t, client, fetcher, &fakeNotifier{})

	manager.OpenCreate()
	manager.SetField("name", "Supplier Discovery")
	if err := manager.Save(context.Background()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if client.createCalls != 1 {
		t.Fatalf("expected one create, got %d", client.createCalls)
	}
	if manager.DialogOpen() {
		t.Fatalf("dialog must close after success")
	}
	if fetcher.listCalls("products") != 1 {
		t.Fatalf("expected exactly one refresh, got %d", fetcher.listCalls("products"))
	}
}

func TestSaveFailureKeepsDialogOpen(t *testing.T) {
	client := &fakeClient{createErr: errors.New("store offline")}
	fetcher := newFakeFetcher()
	notifier := &fakeNotifier{}
	manager, _ := testManager(t, client, fetcher, notifier)

	manager.OpenCreate()
	manager.SetField("name", "Supplier Discovery")
	if err := manager.Save(context.Background()); err == nil {
		t.Fatalf("expected save error")
	}
	if !manager.DialogOpen() {
		t.Fatalf("dialog must stay open on failure")
	}
	if fetcher.listCalls("products") != 0 {
		t.Fatalf("failed save must not refresh")
	}
	if manager.form["name"] != "Supplier Discovery" {
		t.Fatalf("submission must stay intact for retry")
	}
}

func TestSaveEditSendsRecordVersion(t *testing.T) {
	client := &fakeClient{}
	manager, _ := testManager(t, client, newFakeFetcher(), &fakeNotifier{})

	manager.OpenEdit(content.Record{
		ID:      "p-1",
		Version: 5,
		Payload: map[string]any{"name": "Supplier Discovery"},
	})
	manager.SetField("name", "Supplier Discovery Pro")
	if err := manager.Save(context.Background()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if client.updateCalls != 1 || client.createCalls != 0 {
		t.Fatalf("expected update path")
	}
	if client.lastVersion != 5 {
		t.Fatalf("expected record version forwarded, got %d", client.lastVersion)
	}
}

func TestOpenCreatePresetsOrderForOrderable(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.records["products"] = []content.Record{{ID: "p-1"}, {ID: "p-2"}}
	manager, shell := testManager(t, &fakeClient{}, fetcher, &fakeNotifier{})
	shell.FetchAll(context.Background())

	manager.OpenCreate()
	if manager.form["order"] != 2 {
		t.Fatalf("expected order preset to collection end, got %v", manager.form["order"])
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	client := &fakeClient{}
	manager, _ := testManager(t, client, newFakeFetcher(), &fakeNotifier{})

	if err := manager.Delete(context.Background(), "p-1", false); err == nil {
		t.Fatalf("expected confirmation error")
	}
	if client.deleteCalls != 0 {
		t.Fatalf("unconfirmed delete must send nothing")
	}
	if err := manager.Delete(context.Background(), "p-1", true); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if client.deleteCalls != 1 {
		t.Fatalf("expected one delete")
	}
}

func TestDeleteAlreadyRemovedDegradesGracefully(t *testing.T) {
	client := &fakeClient{deleteErr: content.ErrRecordNotFound}
	fetcher := newFakeFetcher()
	notifier := &fakeNotifier{}
	manager, _ := testManager(t, client, fetcher, notifier)

	if err := manager.Delete(context.Background(), "p-gone", true); err != nil {
		t.Fatalf("expected nil for already-removed record, got %v", err)
	}
	if len(notifier.levels) != 1 || notifier.levels[0] != "info" {
		t.Fatalf("expected info notification, got %v", notifier.levels)
	}
	if fetcher.listCalls("products") != 1 {
		t.Fatalf("expected refresh to reconcile state")
	}
}

func TestSeedRefusesNonEmptyCollection(t *testing.T) {
	client := &fakeClient{}
	fetcher := newFakeFetcher()
	fetcher.records["products"] = []content.Record{{ID: "p-1"}}
	manager, shell := testManager(t, client, fetcher, &fakeNotifier{})
	shell.FetchAll(context.Background())

	if err := manager.Seed(context.Background()); err == nil {
		t.Fatalf("expected seed refusal")
	}
	if client.seedCalls != 0 {
		t.Fatalf("refused seed must send nothing")
	}
}

func TestToggleActiveSendsSingleField(t *testing.T) {
	client := &fakeClient{}
	fetcher := newFakeFetcher()
	manager, _ := testManager(t, client, fetcher, &fakeNotifier{})

	item := content.Record{ID: "p-1", Version: 3, Payload: map[string]any{"name": "Supplier Discovery"}}
	if err := manager.ToggleActive(context.Background(), item, false); err != nil {
		t.Fatalf("ToggleActive returned error: %v", err)
	}
	if len(client.lastPayload) != 1 || client.lastPayload["isActive"] != false {
		t.Fatalf("expected single-field payload, got %#v", client.lastPayload)
	}
	if client.lastVersion != 3 {
		t.Fatalf("expected record version forwarded")
	}
	if fetcher.listCalls("products") != 1 {
		t.Fatalf("expected refresh after toggle")
	}
}
