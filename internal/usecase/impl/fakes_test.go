package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"

	"github.com/google/uuid"
)

// Hand-written in-memory fakes for the repository and service interfaces.
// Each fake records the queries it receives so tests can assert on
// normalization and pagination without a database.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- users ---

type fakeUserRepo struct {
	byID      map[uuid.UUID]*entity.User
	lastQuery repository.ListQuery
	createErr error
	updateErr error
	updated   []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) add(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byID[user.ID] = user

	return user
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := f.byID[id]; ok {
		copied := *user
		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	for _, user := range f.byID {
		if user.ExternalID == externalID && externalID != "" {
			copied := *user
			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.byID {
		if user.Username == username && username != "" {
			copied := *user
			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.User, error) {
	f.lastQuery = query

	out := make([]*entity.User, 0, len(f.byID))
	for _, user := range f.byID {
		copied := *user
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.add(user)

	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	current, ok := f.byID[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	f.updated = append(f.updated, user)

	// Merge non-zero fields, mirroring the store's partial update.
	if user.Name != "" {
		current.Name = user.Name
	}
	if user.ExternalID != "" {
		current.ExternalID = user.ExternalID
	}
	if user.Username != "" {
		current.Username = user.Username
	}
	if user.PasswordHash != "" {
		current.PasswordHash = user.PasswordHash
	}
	if user.Role != "" {
		current.Role = user.Role
	}
	if user.LastLoginTime != 0 {
		current.LastLoginTime = user.LastLoginTime
	}

	return nil
}

func (f *fakeUserRepo) Replace(_ context.Context, user *entity.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	f.byID[user.ID] = &copied

	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- refresh tokens ---

type fakeRefreshTokenRepo struct {
	byHash map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byHash: make(map[string]*entity.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	copied := *token
	f.byHash[token.TokenHash] = &copied

	return nil
}

func (f *fakeRefreshTokenRepo) ConsumeByHash(_ context.Context, hash string) (*entity.RefreshToken, error) {
	token, ok := f.byHash[hash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	delete(f.byHash, hash)
	if time.Now().After(token.ExpiresAt) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return token, nil
}

func (f *fakeRefreshTokenRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for hash, token := range f.byHash {
		if token.UserID == userID {
			delete(f.byHash, hash)
		}
	}

	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var removed int64
	for hash, token := range f.byHash {
		if time.Now().After(token.ExpiresAt) {
			delete(f.byHash, hash)
			removed++
		}
	}

	return removed, nil
}

// --- token service ---

type fakeTokenService struct {
	counter int
}

func (f *fakeTokenService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return "access:" + userID.String() + ":" + role, nil
}

func (f *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, nil
}

func (f *fakeTokenService) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	f.counter++
	raw := fmt.Sprintf("%s.refresh-%d", userID.String(), f.counter)

	return raw, f.HashRefreshToken(raw), nil
}

func (f *fakeTokenService) HashRefreshToken(raw string) string {
	return "hash(" + raw + ")"
}

func (f *fakeTokenService) GetAccessTokenDuration() time.Duration {
	return 15 * time.Minute
}

func (f *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return 30 * 24 * time.Hour
}

// --- password hasher ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// --- identity provider ---

type fakeIdentityService struct {
	user *service.IdentityUser
	err  error
}

func (f *fakeIdentityService) ResolveCode(_ context.Context, _ string) (*service.IdentityUser, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.user, nil
}

// --- machines ---

type fakeMachineRepo struct {
	byID       map[uuid.UUID]*entity.Machine
	lastQuery  repository.ListQuery
	slotWrites []entity.SlotCounts
	created    []*entity.Machine
}

func newFakeMachineRepo() *fakeMachineRepo {
	return &fakeMachineRepo{byID: make(map[uuid.UUID]*entity.Machine)}
}

func (f *fakeMachineRepo) add(machine *entity.Machine) *entity.Machine {
	if machine.ID == uuid.Nil {
		machine.ID = uuid.New()
	}
	f.byID[machine.ID] = machine

	return machine
}

func (f *fakeMachineRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Machine, error) {
	if machine, ok := f.byID[id]; ok {
		copied := *machine
		return &copied, nil
	}

	return nil, repository.ErrMachineNotFound
}

func (f *fakeMachineRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.Machine, error) {
	f.lastQuery = query

	out := make([]*entity.Machine, 0, len(f.byID))
	for _, machine := range f.byID {
		copied := *machine
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeMachineRepo) Create(_ context.Context, machine *entity.Machine) error {
	f.add(machine)
	f.created = append(f.created, machine)

	return nil
}

func (f *fakeMachineRepo) Update(_ context.Context, machine *entity.Machine) error {
	current, ok := f.byID[machine.ID]
	if !ok {
		return repository.ErrMachineNotFound
	}
	if machine.MachineID != "" {
		current.MachineID = machine.MachineID
	}
	if machine.Alias != "" {
		current.Alias = machine.Alias
	}
	if machine.Type != "" {
		current.Type = machine.Type
	}
	if machine.State != "" {
		current.State = machine.State
	}
	if machine.LocationID != nil {
		current.LocationID = machine.LocationID
	}

	return nil
}

func (f *fakeMachineRepo) Replace(_ context.Context, machine *entity.Machine) error {
	if _, ok := f.byID[machine.ID]; !ok {
		return repository.ErrMachineNotFound
	}
	copied := *machine
	f.byID[machine.ID] = &copied

	return nil
}

func (f *fakeMachineRepo) UpdateSlots(_ context.Context, id uuid.UUID, slots entity.SlotCounts) error {
	machine, ok := f.byID[id]
	if !ok {
		return repository.ErrMachineNotFound
	}
	machine.Slots = slots
	f.slotWrites = append(f.slotWrites, slots)

	return nil
}

func (f *fakeMachineRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrMachineNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- work logs ---

type fakeWorkLogRepo struct {
	byID       map[uuid.UUID]*entity.WorkLog
	lastQuery  repository.ListQuery
	slotWrites []entity.SlotCounts
}

func newFakeWorkLogRepo() *fakeWorkLogRepo {
	return &fakeWorkLogRepo{byID: make(map[uuid.UUID]*entity.WorkLog)}
}

func (f *fakeWorkLogRepo) add(log *entity.WorkLog) *entity.WorkLog {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	f.byID[log.ID] = log

	return log
}

func (f *fakeWorkLogRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WorkLog, error) {
	if log, ok := f.byID[id]; ok {
		copied := *log
		return &copied, nil
	}

	return nil, repository.ErrWorkLogNotFound
}

func (f *fakeWorkLogRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.WorkLog, error) {
	f.lastQuery = query

	out := make([]*entity.WorkLog, 0, len(f.byID))
	for _, log := range f.byID {
		copied := *log
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeWorkLogRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*entity.WorkLog, error) {
	f.lastQuery = query

	out := make([]*entity.WorkLog, 0)
	for _, log := range f.byID {
		for _, id := range log.OwnerIDs {
			if id == ownerID {
				copied := *log
				out = append(out, &copied)
				break
			}
		}
	}

	return out, nil
}

func (f *fakeWorkLogRepo) Create(_ context.Context, log *entity.WorkLog) error {
	f.add(log)

	return nil
}

func (f *fakeWorkLogRepo) Update(_ context.Context, log *entity.WorkLog) error {
	if _, ok := f.byID[log.ID]; !ok {
		return repository.ErrWorkLogNotFound
	}

	return nil
}

func (f *fakeWorkLogRepo) Replace(_ context.Context, log *entity.WorkLog) error {
	if _, ok := f.byID[log.ID]; !ok {
		return repository.ErrWorkLogNotFound
	}
	copied := *log
	f.byID[log.ID] = &copied

	return nil
}

func (f *fakeWorkLogRepo) UpdateSlots(_ context.Context, id uuid.UUID, slots entity.SlotCounts) error {
	log, ok := f.byID[id]
	if !ok {
		return repository.ErrWorkLogNotFound
	}
	log.Slots = slots
	f.slotWrites = append(f.slotWrites, slots)

	return nil
}

func (f *fakeWorkLogRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrWorkLogNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- attachment store ---

type fakeAttachmentStore struct {
	files    map[string][]byte
	removals []int
	saveErr  error
}

func newFakeAttachmentStore() *fakeAttachmentStore {
	return &fakeAttachmentStore{files: make(map[string][]byte)}
}

func (f *fakeAttachmentStore) key(ownerID uuid.UUID, category entity.SlotCategory, index int) string {
	return fmt.Sprintf("%s/%s/%d", ownerID, category, index)
}

func (f *fakeAttachmentStore) Save(ownerID uuid.UUID, category entity.SlotCategory, index int, r io.Reader) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.files[f.key(ownerID, category, index)] = data

	return nil
}

func (f *fakeAttachmentStore) Open(ownerID uuid.UUID, category entity.SlotCategory, index int) (io.ReadCloser, error) {
	data, ok := f.files[f.key(ownerID, category, index)]
	if !ok {
		return nil, os.ErrNotExist
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeAttachmentStore) Remove(ownerID uuid.UUID, category entity.SlotCategory, upto int) {
	f.removals = append(f.removals, upto)
	for i := 1; i <= upto; i++ {
		delete(f.files, f.key(ownerID, category, i))
	}
}

// --- sites ---

type fakeSiteRepo struct {
	byID      map[uuid.UUID]*entity.Site
	lastQuery repository.ListQuery
}

func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{byID: make(map[uuid.UUID]*entity.Site)}
}

func (f *fakeSiteRepo) add(site *entity.Site) *entity.Site {
	if site.ID == uuid.Nil {
		site.ID = uuid.New()
	}
	f.byID[site.ID] = site

	return site
}

func (f *fakeSiteRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Site, error) {
	if site, ok := f.byID[id]; ok {
		copied := *site
		return &copied, nil
	}

	return nil, repository.ErrSiteNotFound
}

func (f *fakeSiteRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.Site, error) {
	f.lastQuery = query

	out := make([]*entity.Site, 0, len(f.byID))
	for _, site := range f.byID {
		copied := *site
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeSiteRepo) ListAll(_ context.Context) ([]*entity.Site, error) {
	out := make([]*entity.Site, 0, len(f.byID))
	for _, site := range f.byID {
		copied := *site
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeSiteRepo) Create(_ context.Context, site *entity.Site) error {
	f.add(site)

	return nil
}

func (f *fakeSiteRepo) Update(_ context.Context, site *entity.Site) error {
	if _, ok := f.byID[site.ID]; !ok {
		return repository.ErrSiteNotFound
	}

	return nil
}

func (f *fakeSiteRepo) Replace(_ context.Context, site *entity.Site) error {
	if _, ok := f.byID[site.ID]; !ok {
		return repository.ErrSiteNotFound
	}
	copied := *site
	f.byID[site.ID] = &copied

	return nil
}

func (f *fakeSiteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrSiteNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- clients ---

type fakeClientRepo struct {
	byID      map[uuid.UUID]*entity.Client
	lastQuery repository.ListQuery
	createErr error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[uuid.UUID]*entity.Client)}
}

func (f *fakeClientRepo) add(client *entity.Client) *entity.Client {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	f.byID[client.ID] = client

	return client
}

func (f *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	if client, ok := f.byID[id]; ok {
		copied := *client
		return &copied, nil
	}

	return nil, repository.ErrClientNotFound
}

func (f *fakeClientRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.Client, error) {
	f.lastQuery = query

	out := make([]*entity.Client, 0, len(f.byID))
	for _, client := range f.byID {
		copied := *client
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.add(client)

	return nil
}

func (f *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := f.byID[client.ID]; !ok {
		return repository.ErrClientNotFound
	}

	return nil
}

func (f *fakeClientRepo) Replace(_ context.Context, client *entity.Client) error {
	if _, ok := f.byID[client.ID]; !ok {
		return repository.ErrClientNotFound
	}
	copied := *client
	f.byID[client.ID] = &copied

	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrClientNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- parts ---

type fakePartRepo struct {
	byID      map[uuid.UUID]*entity.Part
	lastQuery repository.ListQuery
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{byID: make(map[uuid.UUID]*entity.Part)}
}

func (f *fakePartRepo) add(part *entity.Part) *entity.Part {
	if part.ID == uuid.Nil {
		part.ID = uuid.New()
	}
	f.byID[part.ID] = part

	return part
}

func (f *fakePartRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Part, error) {
	if part, ok := f.byID[id]; ok {
		copied := *part
		return &copied, nil
	}

	return nil, repository.ErrPartNotFound
}

func (f *fakePartRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.Part, error) {
	f.lastQuery = query

	out := make([]*entity.Part, 0, len(f.byID))
	for _, part := range f.byID {
		copied := *part
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakePartRepo) Create(_ context.Context, part *entity.Part) error {
	f.add(part)

	return nil
}

func (f *fakePartRepo) Update(_ context.Context, part *entity.Part) error {
	if _, ok := f.byID[part.ID]; !ok {
		return repository.ErrPartNotFound
	}

	return nil
}

func (f *fakePartRepo) Replace(_ context.Context, part *entity.Part) error {
	if _, ok := f.byID[part.ID]; !ok {
		return repository.ErrPartNotFound
	}
	copied := *part
	f.byID[part.ID] = &copied

	return nil
}

func (f *fakePartRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrPartNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- work items ---

type fakeWorkItemRepo struct {
	byID      map[uuid.UUID]*entity.WorkItem
	lastQuery repository.ListQuery
}

func newFakeWorkItemRepo() *fakeWorkItemRepo {
	return &fakeWorkItemRepo{byID: make(map[uuid.UUID]*entity.WorkItem)}
}

func (f *fakeWorkItemRepo) add(item *entity.WorkItem) *entity.WorkItem {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.byID[item.ID] = item

	return item
}

func (f *fakeWorkItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WorkItem, error) {
	if item, ok := f.byID[id]; ok {
		copied := *item
		return &copied, nil
	}

	return nil, repository.ErrWorkItemNotFound
}

func (f *fakeWorkItemRepo) List(_ context.Context, query repository.ListQuery) ([]*entity.WorkItem, error) {
	f.lastQuery = query

	out := make([]*entity.WorkItem, 0, len(f.byID))
	for _, item := range f.byID {
		copied := *item
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeWorkItemRepo) ListByWorkLog(_ context.Context, workLogID uuid.UUID) ([]*entity.WorkItem, error) {
	out := make([]*entity.WorkItem, 0)
	for _, item := range f.byID {
		if item.WorkLogID == workLogID {
			copied := *item
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeWorkItemRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*entity.WorkItem, error) {
	f.lastQuery = query

	out := make([]*entity.WorkItem, 0)
	for _, item := range f.byID {
		for _, id := range item.OwnerIDs {
			if id == ownerID {
				copied := *item
				out = append(out, &copied)
				break
			}
		}
	}

	return out, nil
}

func (f *fakeWorkItemRepo) ListByMachine(_ context.Context, machineID uuid.UUID, query repository.ListQuery) ([]*entity.WorkItem, error) {
	f.lastQuery = query

	out := make([]*entity.WorkItem, 0)
	for _, item := range f.byID {
		if item.MachineID != nil && *item.MachineID == machineID {
			copied := *item
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeWorkItemRepo) Create(_ context.Context, item *entity.WorkItem) error {
	f.add(item)

	return nil
}

func (f *fakeWorkItemRepo) Update(_ context.Context, item *entity.WorkItem) error {
	if _, ok := f.byID[item.ID]; !ok {
		return repository.ErrWorkItemNotFound
	}

	return nil
}

func (f *fakeWorkItemRepo) Replace(_ context.Context, item *entity.WorkItem) error {
	if _, ok := f.byID[item.ID]; !ok {
		return repository.ErrWorkItemNotFound
	}
	copied := *item
	f.byID[item.ID] = &copied

	return nil
}

func (f *fakeWorkItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrWorkItemNotFound
	}
	delete(f.byID, id)

	return nil
}

// --- qr codes ---

type fakeQRCodeService struct {
	payload []byte
}

func (f *fakeQRCodeService) GenerateMachineQR(uuid.UUID) ([]byte, error) {
	return f.payload, nil
}
