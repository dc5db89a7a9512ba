package query_test

import (
	"reflect"
	"testing"

	"github.com/JaimeStill/gallery/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "images", "i").
		Project("id", "ID").
		Project("title", "Title").
		Project("position", "Position")
}

func TestProjectionMap(t *testing.T) {
	pm := newTestProjection()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Table", pm.Table(), "public.images i"},
		{"Target", pm.Target(), "public.images AS i"},
		{"Columns", pm.Columns(), "i.id, i.title, i.position"},
		{"Column", pm.Column("Title"), "i.title"},
		{"RawColumn", pm.RawColumn("Position"), "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestProjectionMap_UnknownFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Column() with unknown field did not panic")
		}
	}()

	newTestProjection().Column("Missing")
}

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *query.Builder
		wantSQL string
	}{
		{
			name:    "no sort",
			builder: query.NewBuilder(newTestProjection()),
			wantSQL: "SELECT i.id, i.title, i.position FROM public.images i",
		},
		{
			name: "multi-field sort",
			builder: query.NewBuilder(newTestProjection(),
				query.SortField{Field: "Position"},
				query.SortField{Field: "ID", Descending: true},
			),
			wantSQL: "SELECT i.id, i.title, i.position FROM public.images i ORDER BY i.position ASC, i.id DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.builder.Build()
			if sql != tt.wantSQL {
				t.Errorf("Build() sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != 0 {
				t.Errorf("Build() args = %v, want empty", args)
			}
		})
	}
}

func TestBuilder_Build_WithCondition(t *testing.T) {
	sql, args := query.
		NewBuilder(newTestProjection(), query.SortField{Field: "Position"}).
		WhereEquals("Title", "sunset").
		Build()

	wantSQL := "SELECT i.id, i.title, i.position FROM public.images i WHERE i.title = $1 ORDER BY i.position ASC"
	if sql != wantSQL {
		t.Errorf("Build() sql = %q, want %q", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"sunset"}) {
		t.Errorf("Build() args = %v, want [sunset]", args)
	}
}

func TestBuilder_WhereEquals_NilIgnored(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).WhereEquals("Title", nil).Build()

	wantSQL := "SELECT i.id, i.title, i.position FROM public.images i"
	if sql != wantSQL {
		t.Errorf("Build() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).BuildSingle("ID", 7)

	wantSQL := "SELECT i.id, i.title, i.position FROM public.images i WHERE i.id = $1"
	if sql != wantSQL {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{7}) {
		t.Errorf("BuildSingle() args = %v, want [7]", args)
	}
}

func TestBuilder_BuildInsert(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).BuildInsert(
		query.Assignment{Field: "Title", Value: "dawn"},
		query.Assignment{Field: "Position", Value: 2},
	)

	wantSQL := "INSERT INTO public.images AS i (title, position) VALUES ($1, $2) RETURNING i.id, i.title, i.position"
	if sql != wantSQL {
		t.Errorf("BuildInsert() sql = %q, want %q", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"dawn", 2}) {
		t.Errorf("BuildInsert() args = %v, want [dawn 2]", args)
	}
}

func TestBuilder_BuildUpdate(t *testing.T) {
	sql, args := query.
		NewBuilder(newTestProjection()).
		WhereEquals("ID", 7).
		BuildUpdate(
			query.Assignment{Field: "Title", Value: "dusk"},
			query.Assignment{Field: "Position", Value: 4},
		)

	wantSQL := "UPDATE public.images i SET title = $1, position = $2 WHERE i.id = $3 RETURNING i.id, i.title, i.position"
	if sql != wantSQL {
		t.Errorf("BuildUpdate() sql = %q, want %q", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"dusk", 4, 7}) {
		t.Errorf("BuildUpdate() args = %v, want [dusk 4 7]", args)
	}
}

func TestBuilder_BuildDelete(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).WhereEquals("ID", 7).BuildDelete()

	wantSQL := "DELETE FROM public.images i WHERE i.id = $1"
	if sql != wantSQL {
		t.Errorf("BuildDelete() sql = %q, want %q", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{7}) {
		t.Errorf("BuildDelete() args = %v, want [7]", args)
	}
}
