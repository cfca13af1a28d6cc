package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/domain/errs"
	brokerRepository "audiblebooks/internal/domain/repository/broker"
	"audiblebooks/internal/domain/model"
)

// fakeFileStore is an in-memory stand-in for the chunked object store,
// implementing the Storer, Retriever and Remover contracts.
type fakeFileStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	storeErr  map[string]error
	removeErr error
	storeCall int
	removed   []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{
		objects:  map[string][]byte{},
		types:    map[string]string{},
		storeErr: map[string]error{},
	}
}

func (f *fakeFileStore) Store(_ context.Context, name, contentType string, r io.Reader) (entity.ObjectHeader, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.storeCall++
	if err := f.storeErr[name]; err != nil {
		return entity.ObjectHeader{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return entity.ObjectHeader{}, err
	}
	f.objects[name] = data
	f.types[name] = contentType

	return f.header(name), nil
}

func (f *fakeFileStore) FindByName(_ context.Context, name string) (entity.ObjectHeader, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.objects[name]; !ok {
		return entity.ObjectHeader{}, errs.NotFoundf("no object named %q", name)
	}

	return f.header(name), nil
}

func (f *fakeFileStore) Open(ctx context.Context, name string) (entity.ObjectHeader, io.ReadCloser, error) {
	header, data, err := f.ReadAll(ctx, name)
	if err != nil {
		return entity.ObjectHeader{}, nil, err
	}

	return header, io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeFileStore) ReadAll(_ context.Context, name string) (entity.ObjectHeader, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[name]
	if !ok {
		return entity.ObjectHeader{}, nil, errs.NotFoundf("no object named %q", name)
	}

	return f.header(name), data, nil
}

func (f *fakeFileStore) RemoveByName(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removed = append(f.removed, name)
	if f.removeErr != nil {
		return f.removeErr
	}
	if _, ok := f.objects[name]; !ok {
		return errs.NotFoundf("no object named %q", name)
	}
	delete(f.objects, name)
	delete(f.types, name)

	return nil
}

func (f *fakeFileStore) header(name string) entity.ObjectHeader {
	return entity.ObjectHeader{
		ID:          "obj-" + name,
		Name:        name,
		ContentType: f.types[name],
		Length:      int64(len(f.objects[name])),
		ChunkSize:   255 * 1024,
		CreatedAt:   time.Now().UTC(),
	}
}

// fakeDatabase implements the Writer, Retriever, Updater, Remover and Lister
// contracts against a map. GetByID hands out copies so a mutation is only
// visible once saved back.
type fakeDatabase struct {
	mu       sync.Mutex
	books    map[string]*model.Audiobook
	writeErr error
	saveErr  error
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{books: map[string]*model.Audiobook{}}
}

func (f *fakeDatabase) Write(_ context.Context, book *model.Audiobook) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return "", f.writeErr
	}
	if book.ID == "" {
		book.ID = fmt.Sprintf("book-%d", len(f.books)+1)
	}
	clone := *book
	f.books[book.ID] = &clone

	return book.ID, nil
}

func (f *fakeDatabase) GetByID(_ context.Context, id string) (*model.Audiobook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	book, ok := f.books[id]
	if !ok {
		return nil, errs.NotFoundf("audiobook not found")
	}
	clone := *book
	clone.Ratings = append([]model.Rating(nil), book.Ratings...)

	return &clone, nil
}

func (f *fakeDatabase) Save(_ context.Context, book *model.Audiobook) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.books[book.ID]; !ok {
		return errs.NotFoundf("audiobook not found")
	}
	clone := *book
	f.books[book.ID] = &clone

	return nil
}

func (f *fakeDatabase) SetFields(_ context.Context, id string, fields map[string]any) (*model.Audiobook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	book, ok := f.books[id]
	if !ok {
		return nil, errs.NotFoundf("audiobook not found")
	}

	for key, value := range fields {
		switch key {
		case "title":
			book.Title = value.(string)
		case "description":
			book.Description = value.(string)
		case "categories":
			book.Categories = value.([]string)
		case "subcategories":
			book.Subcategories = value.([]string)
		case "genre":
			book.Genre = value.(string)
		case "coverImage":
			book.CoverImage = value.(string)
		case "audioFile":
			book.AudioFile = value.(string)
		default:
			return nil, fmt.Errorf("unexpected field %q", key)
		}
	}

	clone := *book

	return &clone, nil
}

func (f *fakeDatabase) RemoveByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.books[id]; !ok {
		return errs.NotFoundf("audiobook not found")
	}
	delete(f.books, id)

	return nil
}

func (f *fakeDatabase) List(_ context.Context, authorID string) ([]model.Audiobook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Audiobook
	for _, book := range f.books {
		if authorID == "" || book.AuthorID == authorID {
			out = append(out, *book)
		}
	}

	return out, nil
}

func (f *fakeDatabase) Search(_ context.Context, query string) ([]model.Audiobook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Audiobook
	for _, book := range f.books {
		if book.Title == query || book.Genre == query {
			out = append(out, *book)
		}
	}

	return out, nil
}

func (f *fakeDatabase) ListByCategory(_ context.Context, category string) ([]model.Audiobook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Audiobook
	for _, book := range f.books {
		for _, c := range book.Categories {
			if c == category {
				out = append(out, *book)

				break
			}
		}
	}

	return out, nil
}

func (f *fakeDatabase) Categories(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return distinctValues(f.books, func(b *model.Audiobook) []string { return b.Categories }), nil
}

func (f *fakeDatabase) Subcategories(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return distinctValues(f.books, func(b *model.Audiobook) []string { return b.Subcategories }), nil
}

func distinctValues(books map[string]*model.Audiobook, values func(*model.Audiobook) []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, book := range books {
		for _, v := range values(book) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []brokerRepository.Event
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event brokerRepository.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)

	return nil
}
