package checkout

// LimaDistricts are the delivery districts offered on the checkout form.
var LimaDistricts = []string{
	"Cercado de Lima", "Ancón", "Ate", "Barranco", "Breña", "Carabayllo", "Chaclacayo", "Chorrillos",
	"Cieneguilla", "Comas", "El Agustino", "Independencia", "Jesús María", "La Molina", "La Victoria",
	"Lince", "Los Olivos", "Lurigancho-Chosica", "Lurin", "Magdalena del Mar", "Miraflores", "Pachacámac",
	"Pucusana", "Pueblo Libre", "Puente Piedra", "Punta Hermosa", "Punta Negra", "Rímac", "San Bartolo",
	"San Borja", "San Isidro", "San Juan de Lurigancho", "San Juan de Miraflores", "San Luis", "San Martín de Porres",
	"San Miguel", "Santa Anita", "Santa María del Mar", "Santa Rosa", "Santiago de Surco", "Surquillo",
	"Villa El Salvador", "Villa María del Triunfo",
}
