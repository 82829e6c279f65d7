package domain

// Movie Model
type Movie struct {
	ID      uint    `gorm:"primaryKey"`             // Primary key
	Title   string  `gorm:"size:255;not null"`      // Movie title
	Year    int     `gorm:"not null"`               // Release year
	Ratings int     `gorm:"not null;default:0"`     // Free-form rating metadata, not derived from reviews
	Genres  []Genre `gorm:"many2many:movie_genre;"` // Many-to-many relationship with Genre
}

// MovieGenre is the join row between Movie and Genre
type MovieGenre struct {
	MovieID uint `gorm:"primaryKey"` // Composite key part, foreign key to Movie
	GenreID uint `gorm:"primaryKey"` // Composite key part, foreign key to Genre
}
