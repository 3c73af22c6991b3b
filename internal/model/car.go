package model

// Car is a record of the cars deployment. Every field except ID may be null:
// createCar stores whatever subset of fields the caller supplied.
type Car struct {
	ID    int32   `json:"id"`
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int32  `json:"year"`
	Color *string `json:"color"`
	Price *int32  `json:"price"`
}

// CarInput carries the caller supplied fields of a new car. It doubles as the
// argument set of the createCar mutation.
type CarInput struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int32  `json:"year"`
	Color *string `json:"color"`
	Price *int32  `json:"price"`
}
