package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListingFilterAlwaysRestrictsStatus(t *testing.T) {
	cases := []ListingQuery{
		{},
		{Category: "activity"},
		{Search: "kite"},
		{Category: "activity", Search: "kite", Sort: SortRating},
	}

	for _, q := range cases {
		filter := buildListingFilter(q)
		status, ok := filter["status"].(bson.M)
		if !ok {
			t.Fatalf("query %+v: falta la restricción de status", q)
		}
		in, ok := status["$in"].([]string)
		if !ok || len(in) != 2 || in[0] != "active" || in[1] != "approved" {
			t.Errorf("query %+v: esperaba status $in [active approved], obtuve %v", q, status["$in"])
		}
	}
}

func TestBuildListingFilterCategory(t *testing.T) {
	filter := buildListingFilter(ListingQuery{Category: "activity"})
	if filter["category"] != "activity" {
		t.Errorf("esperaba category=activity, obtuve %v", filter["category"])
	}

	// el sentinel "all" y el vacío no filtran por categoría
	for _, c := range []string{"", CategoryAll} {
		filter := buildListingFilter(ListingQuery{Category: c})
		if _, ok := filter["category"]; ok {
			t.Errorf("category %q no debería filtrar", c)
		}
	}
}

func TestBuildListingFilterSearch(t *testing.T) {
	filter := buildListingFilter(ListingQuery{Search: "kite (beach)"})

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("esperaba $or con title y description, obtuve %v", filter["$or"])
	}

	for i, field := range []string{"title", "description"} {
		cond, ok := or[i][field].(bson.M)
		if !ok {
			t.Fatalf("falta la condición sobre %s", field)
		}
		if cond["$options"] != "i" {
			t.Errorf("%s: el match debe ser case-insensitive", field)
		}
		// los metacaracteres del usuario van escapados
		if cond["$regex"] != `kite \(beach\)` {
			t.Errorf("%s: regex sin escapar: %v", field, cond["$regex"])
		}
	}
}

func TestBuildListingSort(t *testing.T) {
	cases := []struct {
		sortKey string
		field   string
		dir     int
	}{
		{SortNewest, "created_at", -1},
		{"", "created_at", -1},
		{SortPriceAsc, "price", 1},
		{SortPriceDesc, "price", -1},
	}

	for _, tc := range cases {
		sort := buildListingSort(tc.sortKey)
		if len(sort) != 1 || sort[0].Key != tc.field || sort[0].Value != tc.dir {
			t.Errorf("sort %q: esperaba {%s %d}, obtuve %v", tc.sortKey, tc.field, tc.dir, sort)
		}
	}

	// rating se ordena client-side después de agregar, el store no ordena
	if sort := buildListingSort(SortRating); sort != nil {
		t.Errorf("sort rating no debe ir al store, obtuve %v", sort)
	}
}

func TestPriceFilters(t *testing.T) {
	priced, unpriced := priceFilters(ListingQuery{Category: "activity", Sort: SortPriceAsc})

	// la primera lectura excluye las filas sin precio: si entraran acá, el
	// store las ordenaría primero en ascendente y consumirían el límite
	// desplazando filas con precio real
	cond, ok := priced["price"].(bson.M)
	if !ok {
		t.Fatalf("filtro con precio: esperaba price $ne null, obtuve %v", priced["price"])
	}
	if v, exists := cond["$ne"]; !exists || v != nil {
		t.Errorf("filtro con precio: esperaba $ne null, obtuve %v", cond)
	}

	// la segunda lectura trae solo las filas sin precio (rellenan el cupo
	// que sobre, siempre al final)
	if v, ok := unpriced["price"]; !ok || v != nil {
		t.Errorf("filtro sin precio: esperaba price=null, obtuve %v", v)
	}

	// ambos filtros conservan la restricción pública y la categoría
	for name, f := range map[string]bson.M{"con precio": priced, "sin precio": unpriced} {
		if _, ok := f["status"]; !ok {
			t.Errorf("filtro %s: falta la restricción de status", name)
		}
		if f["category"] != "activity" {
			t.Errorf("filtro %s: falta la categoría", name)
		}
	}
}

func TestListingQueryDefaults(t *testing.T) {
	q := ListingQuery{}
	if q.limit() != DefaultListingLimit {
		t.Errorf("límite por defecto: esperaba %d, obtuve %d", DefaultListingLimit, q.limit())
	}
	if q2 := (ListingQuery{Limit: 4}); q2.limit() != 4 {
		t.Errorf("límite explícito: esperaba 4, obtuve %d", q2.limit())
	}
}

func TestBuildPOIFilterSearch(t *testing.T) {
	filter := buildPOIFilter(POIQuery{Search: "cave", Category: "historical_site", Featured: true})

	if filter["category"] != "historical_site" {
		t.Errorf("esperaba category=historical_site, obtuve %v", filter["category"])
	}
	if filter["featured"] != true {
		t.Errorf("esperaba featured=true")
	}
	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("esperaba $or sobre name y description, obtuve %v", filter["$or"])
	}
	if _, ok := or[0]["name"]; !ok {
		t.Errorf("la primera condición debe ser sobre name")
	}
}
