package catalog

// strike marks a pre-discount price on a menu item.
func strike(v float64) *float64 { return &v }

// MenuData is the static Atithi menu the site launches with.
// Ratings seeded here are the starting averages; visitors fold
// new ratings into them through the rating endpoint.
func MenuData() []MenuCategory {
	return []MenuCategory{
		{
			Name: "Veg Dishes",
			Items: []MenuItem{
				{Name: "Chana Masala", Price: 80, Description: "A classic North Indian curry with chickpeas in a spicy, tangy tomato-based sauce.", Rating: 5, RatingsCount: 120},
				{Name: "Mixed Veg", Price: 80, OriginalPrice: strike(100), Description: "A medley of seasonal vegetables cooked in a rich and aromatic gravy.", Rating: 4, RatingsCount: 95},
				{Name: "Chana Paneer", Price: 120, Description: "A delightful combination of chickpeas and soft paneer cubes in a flavorful curry.", Rating: 5, RatingsCount: 150},
				{Name: "Veg Tarka", Price: 80, Description: "Yellow lentils tempered with aromatic spices, a comforting and hearty dish.", Rating: 4, RatingsCount: 88},
				{Name: "Paneer Masala", Price: 140, OriginalPrice: strike(160), Description: "Soft paneer cubes simmered in a spiced tomato and onion gravy.", Rating: 5, RatingsCount: 210},
				{Name: "Paneer Butter Masala", Price: 150, Description: "A crowd favorite! Creamy and rich curry with paneer in a buttery tomato sauce.", Rating: 5, RatingsCount: 350},
				{Name: "Dal Makhani", Price: 90, Description: "Black lentils and kidney beans slow-cooked to perfection in a creamy, buttery sauce.", Rating: 5, RatingsCount: 180},
				{Name: "Matar Paneer", Price: 150, Description: "A wholesome curry of paneer and green peas in a tomato-based gravy.", Rating: 4, RatingsCount: 140},
				{Name: "Paneer Do Pyaza", Price: 160, Description: "A unique dish where paneer is cooked with a generous amount of onions.", Rating: 4, RatingsCount: 110},
				{Name: "Kadai Paneer", Price: 170, OriginalPrice: strike(190), Description: "Paneer and bell peppers cooked in a spicy masala in a traditional Indian wok.", Rating: 5, RatingsCount: 250},
				{Name: "Paneer Jhal Fry", Price: 180, Description: "Spicy and tangy stir-fried paneer with a mix of vibrant vegetables.", Rating: 4, RatingsCount: 75},
				{Name: "Paneer Bharta", Price: 190, Description: "Mashed paneer cooked with onions, tomatoes, and spices. A flavorful scramble.", Rating: 4, RatingsCount: 60},
				{Name: "Paneer Malai Kofta", Price: 220, Description: "Deep-fried paneer and vegetable balls in a rich, creamy, and mildly sweet gravy.", Rating: 5, RatingsCount: 280},
				{Name: "Paneer Chilli", Price: 140, Description: "An Indo-Chinese classic. Crispy paneer tossed in a spicy and tangy chili sauce.", Rating: 5, RatingsCount: 190},
				{Name: "Mushroom Chilli", Price: 180, Description: "Crispy mushrooms stir-fried with bell peppers and onions in a spicy sauce.", Rating: 4, RatingsCount: 130},
				{Name: "Mushroom Masala", Price: 190, Description: "Button mushrooms cooked in a savory and spiced onion-tomato gravy.", Rating: 4, RatingsCount: 100},
				{Name: "Mushroom Do Pyaza", Price: 200, OriginalPrice: strike(220), Description: "A flavorful mushroom curry with a prominent taste of sweet, crunchy onions.", Rating: 4, RatingsCount: 90},
				{Name: "Mushroom Butter Masala", Price: 210, Description: "Succulent mushrooms in a rich, creamy, and buttery tomato-based gravy.", Rating: 5, RatingsCount: 160},
			},
		},
		{
			Name: "Rolls",
			Items: []MenuItem{
				{Name: "Egg Roll", Price: 50, Description: "A warm paratha wrapped around a savory egg filling with onions and sauces.", Rating: 4, RatingsCount: 250},
				{Name: "Paneer Roll", Price: 60, OriginalPrice: strike(70), Description: "Spiced paneer filling wrapped in a soft paratha. A perfect vegetarian snack.", Rating: 5, RatingsCount: 180},
				{Name: "Chicken Roll", Price: 70, Description: "Juicy chicken chunks with sauces and onions, all rolled up in a paratha.", Rating: 5, RatingsCount: 300},
				{Name: "Egg Chicken Roll", Price: 80, Description: "The best of both worlds! A delicious roll with egg and chicken filling.", Rating: 5, RatingsCount: 220},
				{Name: "Laccha Paratha", Price: 30, Description: "Flaky, layered, and crispy flatbread, perfect to accompany any curry.", Rating: 4, RatingsCount: 400},
			},
		},
		{
			Name: "Noodles",
			Items: []MenuItem{
				{Name: "Veg Chowmein", Price: 70, Description: "Stir-fried noodles packed with a variety of fresh vegetables and sauces.", Rating: 4, RatingsCount: 150},
				{Name: "Egg Chowmein", Price: 80, Description: "Classic chowmein with the added goodness of scrambled eggs.", Rating: 4, RatingsCount: 120},
				{Name: "Chicken Chowmein", Price: 100, OriginalPrice: strike(120), Description: "A satisfying bowl of noodles stir-fried with tender chicken pieces.", Rating: 5, RatingsCount: 200},
				{Name: "Egg Chicken Chowmein", Price: 120, Description: "A hearty combination of chicken and egg tossed with noodles and veggies.", Rating: 5, RatingsCount: 180},
				{Name: "Mixed Chowmein", Price: 140, Description: "The ultimate noodle dish with a mix of chicken, egg, and fresh vegetables.", Rating: 5, RatingsCount: 250},
			},
		},
		{
			Name: "Rice",
			Items: []MenuItem{
				{Name: "Veg Fried Rice", Price: 80, Description: "Fragrant rice stir-fried with a colorful assortment of vegetables.", Rating: 4, RatingsCount: 130},
				{Name: "Jeera Rice", Price: 80, Description: "Basmati rice tempered with cumin seeds, a simple yet aromatic side dish.", Rating: 4, RatingsCount: 110},
				{Name: "Veg Pulao", Price: 90, Description: "Aromatic basmati rice cooked with mixed vegetables and mild spices.", Rating: 4, RatingsCount: 100},
				{Name: "Egg Fried Rice", Price: 90, Description: "A simple and delicious fried rice with scrambled eggs and seasonings.", Rating: 4, RatingsCount: 90},
				{Name: "Chicken Fried Rice", Price: 100, OriginalPrice: strike(110), Description: "Flavorful fried rice loaded with tender chicken and vegetables.", Rating: 5, RatingsCount: 180},
				{Name: "Egg Chicken Fried Rice", Price: 120, Description: "A complete meal with chicken, egg, and vegetables tossed in fragrant rice.", Rating: 5, RatingsCount: 160},
				{Name: "Mixed Fried Rice", Price: 140, Description: "A loaded fried rice with chicken, egg, and shrimp for a fulfilling meal.", Rating: 5, RatingsCount: 220},
				{Name: "Hong Kong Rice", Price: 150, Description: "A spicy and savory fried rice variation with a unique Hong Kong-style flavor.", Rating: 4, RatingsCount: 70},
				{Name: "Chicken Biryani", Price: 130, Description: "Aromatic and flavorful rice dish with marinated chicken, cooked to perfection.", Rating: 5, RatingsCount: 350},
			},
		},
		{
			Name: "Breakfast",
			Items: []MenuItem{
				{Name: "Puri Sabji", Price: 50, Description: "Fluffy deep-fried bread served with a savory potato curry. A breakfast classic.", Rating: 5, RatingsCount: 200},
				{Name: "Cholla Batora", Price: 80, Description: "Spicy chickpea curry served with large, fluffy fried bread.", Rating: 5, RatingsCount: 180},
				{Name: "Butter Toast", Price: 50, Description: "Crispy toasted bread slices generously slathered with butter.", Rating: 4, RatingsCount: 150},
				{Name: "Egg Toast", Price: 60, Description: "Toasted bread topped with a perfectly cooked egg, your way.", Rating: 4, RatingsCount: 130},
				{Name: "Omelet", Price: 50, Description: "A fluffy two-egg omelet with your choice of simple seasonings.", Rating: 4, RatingsCount: 160},
				{Name: "Egg Boiled (2 pcs)", Price: 40, Description: "Two perfectly hard-boiled eggs, a simple and protein-packed choice.", Rating: 4, RatingsCount: 100},
				{Name: "Oil Poach", Price: 40, Description: "A delicately poached egg, perfect on its own or with a side of toast.", Rating: 4, RatingsCount: 80},
				{Name: "Tea", Price: 20, Description: "A hot, refreshing cup of classic Indian tea to start your day.", Rating: 5, RatingsCount: 500},
				{Name: "Coffee", Price: 30, Description: "A freshly brewed cup of coffee to kickstart your morning.", Rating: 4, RatingsCount: 300},
			},
		},
		{
			Name: "Chicken Dishes",
			Items: []MenuItem{
				{Name: "Chicken Kasa", Price: 150, Description: "A slow-cooked, spicy chicken curry with a thick, rich gravy.", Rating: 5, RatingsCount: 220},
				{Name: "Chicken Do Pyaza", Price: 160, Description: "Tender chicken cooked with a generous amount of onions in a savory gravy.", Rating: 4, RatingsCount: 180},
				{Name: "Kadai Chicken", Price: 170, Description: "A popular North Indian dish of chicken and bell peppers in a spicy tomato gravy.", Rating: 5, RatingsCount: 300},
				{Name: "Chicken Jhal Fry", Price: 180, Description: "A fiery and tangy chicken stir-fry with a mix of spices and vegetables.", Rating: 4, RatingsCount: 150},
				{Name: "Chicken Masala", Price: 190, Description: "A classic chicken curry with a perfectly balanced blend of aromatic spices.", Rating: 5, RatingsCount: 280},
				{Name: "Chicken Handi", Price: 190, Description: "Chicken cooked in a traditional earthen pot, resulting in a unique, earthy flavor.", Rating: 5, RatingsCount: 260},
				{Name: "Chicken Hyderabadi", Price: 200, Description: "A rich and aromatic chicken curry from the royal kitchens of Hyderabad.", Rating: 5, RatingsCount: 240},
				{Name: "Butter Chicken", Price: 200, OriginalPrice: strike(220), Description: "Our signature dish! Grilled chicken in a creamy, buttery tomato sauce.", Rating: 5, RatingsCount: 500},
				{Name: "Kurma Chicken", Price: 200, Description: "A mild and creamy chicken curry cooked with yogurt, nuts, and spices.", Rating: 4, RatingsCount: 190},
				{Name: "Chicken Bharta", Price: 200, Description: "Shredded chicken cooked in a rich and flavorful tomato and onion gravy.", Rating: 4, RatingsCount: 170},
				{Name: "Chicken Manchurian", Price: 160, Description: "An Indo-Chinese favorite featuring crispy chicken in a tangy manchurian sauce.", Rating: 4, RatingsCount: 210},
			},
		},
		{
			Name: "Mutton Dishes",
			Items: []MenuItem{
				{Name: "Mutton Kasa", Price: 220, Description: "A hearty and spicy slow-cooked mutton curry with a thick, flavorful gravy.", Rating: 5, RatingsCount: 190},
				{Name: "Mutton Masala", Price: 240, Description: "Tender mutton pieces cooked in a rich and aromatic spiced gravy.", Rating: 5, RatingsCount: 220},
				{Name: "Mutton Do Pyaza", Price: 230, Description: "A delicious mutton curry loaded with sweet and savory onions.", Rating: 4, RatingsCount: 150},
				{Name: "Mutton Kurma", Price: 260, Description: "A royal and creamy mutton curry made with yogurt, nuts, and fragrant spices.", Rating: 5, RatingsCount: 180},
				{Name: "Mutton Handi", Price: 250, Description: "Succulent mutton cooked in a traditional handi for a deep, rustic flavor.", Rating: 5, RatingsCount: 200},
				{Name: "Mutton Bhona", Price: 250, Description: "A traditional Bengali dish where mutton is slow-cooked with spices until tender.", Rating: 4, RatingsCount: 130},
			},
		},
		{
			Name: "Soups",
			Items: []MenuItem{
				{Name: "Tomato Soup", Price: 80, Description: "A creamy and comforting soup made from fresh, ripe tomatoes.", Rating: 4, RatingsCount: 110},
				{Name: "Veg Clear Soup", Price: 80, Description: "A light and healthy soup with a mix of fresh vegetables in a clear broth.", Rating: 4, RatingsCount: 90},
				{Name: "Veg Sweet Corn Soup", Price: 100, Description: "A classic Indo-Chinese soup that is both sweet and savory.", Rating: 4, RatingsCount: 140},
				{Name: "Veg Hot & Sour Soup", Price: 90, Description: "A spicy and tangy soup loaded with shredded vegetables.", Rating: 4, RatingsCount: 120},
				{Name: "Chicken Clear Soup", Price: 100, Description: "A light and nourishing clear broth with tender pieces of chicken.", Rating: 4, RatingsCount: 100},
				{Name: "Chicken Sweet Corn Soup", Price: 130, Description: "A creamy and comforting soup with chicken and sweet corn kernels.", Rating: 5, RatingsCount: 180},
				{Name: "Chicken Hot & Sour Soup", Price: 120, Description: "A zesty and spicy soup with chicken, mushrooms, and other vegetables.", Rating: 5, RatingsCount: 160},
			},
		},
		{
			Name: "Tandoor & Breads",
			Items: []MenuItem{
				{Name: "Tandoori Roti", Price: 15, Description: "Whole wheat flatbread cooked in a traditional clay tandoor.", Rating: 5, RatingsCount: 600},
				{Name: "Tandoori Butter Roti", Price: 20, Description: "A classic tandoori roti brushed with a generous amount of butter.", Rating: 5, RatingsCount: 550},
				{Name: "Butter Naan", Price: 40, Description: "Soft and fluffy leavened bread cooked in a tandoor and brushed with butter.", Rating: 5, RatingsCount: 700},
				{Name: "Garlic Naan", Price: 50, OriginalPrice: strike(60), Description: "A flavorful naan topped with chopped garlic and herbs, cooked to perfection.", Rating: 5, RatingsCount: 650},
				{Name: "Kabuli Naan", Price: 50, Description: "A slightly sweet naan stuffed with nuts and raisins. A delightful treat.", Rating: 4, RatingsCount: 250},
				{Name: "Paneer Kulcha", Price: 60, Description: "A soft, fluffy bread stuffed with a delicious spiced paneer filling.", Rating: 4, RatingsCount: 300},
				{Name: "Masala Kulcha", Price: 50, Description: "A flavorful bread stuffed with a mix of spiced vegetables and potatoes.", Rating: 4, RatingsCount: 280},
				{Name: "Chicken Tandoori", Price: 350, Description: "The king of kababs! Chicken marinated in yogurt and spices, roasted in a tandoor.", Rating: 5, RatingsCount: 450},
				{Name: "Chicken Tikka (6 pcs)", Price: 160, Description: "Boneless chicken chunks marinated in spices and yogurt, grilled to perfection.", Rating: 5, RatingsCount: 400},
				{Name: "Chicken Hariyali Kabab (6 pcs)", Price: 180, Description: "Chicken kababs marinated in a fresh green paste of mint, cilantro, and spices.", Rating: 5, RatingsCount: 350},
				{Name: "Chicken Tikka Tawa Masala (6 pcs)", Price: 180, Description: "Grilled chicken tikka pieces pan-fried in a spicy and tangy masala.", Rating: 4, RatingsCount: 200},
				{Name: "Tandoori Butter Chicken", Price: 450, Description: "A whole tandoori chicken served in our signature creamy butter chicken gravy.", Rating: 5, RatingsCount: 500},
				{Name: "Paneer Tikka (6 pcs)", Price: 180, OriginalPrice: strike(200), Description: "Cubes of paneer marinated in spices and grilled in a tandoor. A veggie delight.", Rating: 5, RatingsCount: 380},
			},
		},
	}
}
