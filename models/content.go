package models

// ContentModels returns every model that makes up the site content, in
// migration order
func ContentModels() []interface{} {
	return []interface{}{
		&FirmProfile{},
		&HeroSlide{},
		&PracticeArea{},
		&Lawyer{},
		&BlogCategory{},
		&BlogPost{},
		&Testimonial{},
		&Achievement{},
		&NavItem{},
		&FooterLink{},
		&OfficeHours{},
	}
}
