// Package catalog provides static reference data for the institute:
// the course catalog and the chatbot intent definitions.
// These data are maintained manually and updated with each release;
// the process must be restarted to pick up changes.
package catalog

// Course describes a single course offered by the institute.
// The catalog is immutable reference data; IDs are stable and
// externally referenced (enrollments, recommendations).
type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"detailed_description,omitempty"`
	Duration    string `json:"duration"`
	Fee         int    `json:"fee"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Courses returns the full course catalog.
// The returned slice is shared; callers must not mutate it.
func Courses() []Course {
	return allCourses
}

// CourseByID returns the course with the given id, or false when absent.
func CourseByID(id int) (Course, bool) {
	for _, c := range allCourses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

var allCourses = []Course{
	{
		ID:          1,
		Title:       "Basic Computer Skills",
		Description: "Learn fundamental computer operations, file management, and basic software usage.",
		Details:     "This course is designed for beginners who want to become comfortable using computers. You will learn about operating systems, file and folder management, using the internet, email, and basic troubleshooting. The course also covers essential software such as word processors, spreadsheets, and presentation tools. By the end, you will be able to confidently use a computer for daily tasks.",
		Duration:    "4 weeks",
		Fee:         50000,
		ImageURL:    "/static/images/basic-computer.jpg",
	},
	{
		ID:          2,
		Title:       "Web Development",
		Description: "Master HTML, CSS, JavaScript and build responsive websites.",
		Details:     "This comprehensive course covers the foundations of web development. You will learn HTML for structuring web pages, CSS for styling, and JavaScript for interactivity. The course includes hands-on projects to build real-world websites, an introduction to responsive design, and best practices for web development. No prior coding experience required.",
		Duration:    "12 weeks",
		Fee:         65000,
		ImageURL:    "/static/images/web-dev.jpg",
	},
	{
		ID:          3,
		Title:       "Python Programming",
		Description: "Learn Python from basics to advanced concepts including OOP and data structures.",
		Details:     "This course takes you from Python basics to advanced programming. Topics include variables, data types, control flow, functions, modules, object-oriented programming, and data structures like lists, dictionaries, and sets. You will also work on practical projects and problem-solving exercises to solidify your understanding.",
		Duration:    "8 weeks",
		Fee:         12000,
		ImageURL:    "/static/images/python.jpg",
	},
	{
		ID:          4,
		Title:       "Data Science",
		Description: "Explore data analysis, visualization, and machine learning using Python.",
		Details:     "This course introduces you to the world of data science. You will learn data analysis with pandas, data visualization with matplotlib and seaborn, and the basics of machine learning using scikit-learn. The course includes real-world datasets and hands-on projects to build your portfolio.",
		Duration:    "10 weeks",
		Fee:         20000,
		ImageURL:    "/static/images/data-science.jpg",
	},
	{
		ID:          5,
		Title:       "Cloud Computing",
		Description: "Understand cloud fundamentals and get hands-on with AWS and Azure.",
		Details:     "Learn the basics of cloud computing, including service models (IaaS, PaaS, SaaS), deployment models, and cloud security. Get practical experience with leading platforms like AWS and Azure, including deploying virtual machines, storage, and basic networking.",
		Duration:    "6 weeks",
		Fee:         25000,
		ImageURL:    "/static/images/cloud-computing.jpg",
	},
	{
		ID:          6,
		Title:       "Digital Marketing",
		Description: "Master SEO, social media, and online advertising strategies.",
		Details:     "This course covers the essentials of digital marketing, including search engine optimization (SEO), content marketing, social media marketing, email campaigns, and pay-per-click advertising. Learn to create and manage effective digital marketing strategies.",
		Duration:    "6 weeks",
		Fee:         18000,
		ImageURL:    "/static/images/digital-marketing.jpg",
	},
	{
		ID:          7,
		Title:       "Graphic Designing",
		Description: "Learn design principles and tools like Photoshop and Illustrator.",
		Details:     "Explore the fundamentals of graphic design, including color theory, typography, and layout. Gain hands-on experience with industry-standard tools such as Adobe Photoshop and Illustrator to create stunning graphics for print and digital media.",
		Duration:    "8 weeks",
		Fee:         22000,
		ImageURL:    "/static/images/graphic-design.jpg",
	},
	{
		ID:          8,
		Title:       "Mobile App Development",
		Description: "Build Android and iOS apps using modern frameworks.",
		Details:     "Learn to develop mobile applications for Android and iOS platforms. This course covers UI/UX design, app architecture, and hands-on coding with frameworks such as Flutter or React Native. By the end, you will have built your own functional mobile apps.",
		Duration:    "10 weeks",
		Fee:         30000,
		ImageURL:    "/static/images/mobile-app.jpg",
	},
	{
		ID:          9,
		Title:       "Cybersecurity Fundamentals",
		Description: "Understand the basics of cybersecurity and how to protect digital assets.",
		Details:     "This course introduces you to the core concepts of cybersecurity, including network security, encryption, threat analysis, and best practices for protecting personal and organizational data. Includes practical labs and real-world scenarios.",
		Duration:    "6 weeks",
		Fee:         27000,
		ImageURL:    "/static/images/cybersecurity.jpg",
	},
	{
		ID:          10,
		Title:       "C++ Programming",
		Description: "Learn the fundamentals of C++ programming language.",
		Details:     "This course covers the basics of C++ programming including syntax, data types, control structures, functions, object-oriented programming, and standard template library (STL). Ideal for students looking to build a strong foundation in C++.",
		Duration:    "8 weeks",
		Fee:         15000,
		ImageURL:    "/static/images/cpp.jpg",
	},
	{
		ID:          11,
		Title:       "Java Programming",
		Description: "Master Java programming from basics to advanced topics.",
		Details:     "This course covers Java syntax, object-oriented programming, exception handling, collections, GUI development, and introduction to frameworks. Suitable for beginners and those preparing for Java certifications.",
		Duration:    "8 weeks",
		Fee:         16000,
		ImageURL:    "/static/images/java.jpg",
	},
	{
		ID:          12,
		Title:       "Android",
		Description: "Develop Android applications using Java and modern tools.",
		Details:     "Learn to build Android apps from scratch. This course covers Android Studio, UI design, activities, intents, data storage, and publishing apps on the Play Store.",
		Duration:    "10 weeks",
		Fee:         18000,
		ImageURL:    "/static/images/android.jpg",
	},
	{
		ID:          13,
		Title:       "AutoCAD",
		Description: "Learn 2D and 3D design using AutoCAD software.",
		Details:     "This course introduces you to AutoCAD for drafting and designing. Topics include drawing tools, layers, dimensions, 2D drafting, and 3D modeling.",
		Duration:    "6 weeks",
		Fee:         20000,
		ImageURL:    "/static/images/autocad.jpg",
	},
	{
		ID:          14,
		Title:       "Spoken English",
		Description: "Improve your English speaking and communication skills.",
		Details:     "This course focuses on spoken English, pronunciation, vocabulary, grammar, and conversational skills for personal and professional growth.",
		Duration:    "6 weeks",
		Fee:         10000,
		ImageURL:    "/static/images/spoken-english.jpg",
	},
	{
		ID:          15,
		Title:       "Personality Development",
		Description: "Enhance your personality, confidence, and soft skills.",
		Details:     "This course covers communication skills, public speaking, body language, interview preparation, and overall personality enhancement.",
		Duration:    "4 weeks",
		Fee:         9000,
		ImageURL:    "/static/images/personality-development.jpg",
	},
	{
		ID:          16,
		Title:       "Advanced Excel",
		Description: "Master advanced Excel functions, formulas, and data analysis tools.",
		Details:     "This course covers advanced Excel features such as pivot tables, advanced formulas, data visualization, macros, and automation. Ideal for professionals looking to enhance their data analysis and reporting skills.",
		Duration:    "6 weeks",
		Fee:         12000,
		ImageURL:    "/static/images/advanced-excel.jpg",
	},
	{
		ID:          17,
		Title:       "Tally",
		Description: "Learn accounting and financial management using Tally software.",
		Details:     "This course introduces Tally for accounting, inventory management, GST, payroll, and financial reporting. Suitable for students and professionals in finance and accounting.",
		Duration:    "6 weeks",
		Fee:         10000,
		ImageURL:    "/static/images/tally.jpg",
	},
	{
		ID:          18,
		Title:       "GST",
		Description: "Understand Goods and Services Tax (GST) concepts and compliance.",
		Details:     "Learn GST fundamentals, registration, invoicing, returns filing, and compliance using practical examples and Tally integration.",
		Duration:    "4 weeks",
		Fee:         8000,
		ImageURL:    "/static/images/gst.jpg",
	},
	{
		ID:          19,
		Title:       "4 Module",
		Description: "Comprehensive course covering four essential IT modules.",
		Details:     "This program includes modules on Basic Computer Skills, Advanced Excel, Tally, and GST, providing a well-rounded foundation for office and accounting jobs.",
		Duration:    "16 weeks",
		Fee:         35000,
		ImageURL:    "/static/images/4-module.jpg",
	},
	{
		ID:          20,
		Title:       "Basic + Advanced Excel",
		Description: "From Excel basics to advanced data analysis and automation.",
		Details:     "Start with Excel fundamentals and progress to advanced topics like pivot tables, charts, macros, and data analytics.",
		Duration:    "8 weeks",
		Fee:         15000,
		ImageURL:    "/static/images/basic-advanced-excel.jpg",
	},
	{
		ID:          21,
		Title:       "Tally + GST",
		Description: "Integrated course on Tally accounting and GST compliance.",
		Details:     "Learn Tally for accounting and inventory, and master GST concepts, returns, and compliance for business and professional needs.",
		Duration:    "8 weeks",
		Fee:         16000,
		ImageURL:    "/static/images/tally-gst.jpg",
	},
	{
		ID:          22,
		Title:       "Tally Prime",
		Description: "Learn the latest Tally Prime software for accounting.",
		Details:     "This course covers Tally Prime features, accounting, inventory, GST, payroll, and reporting for modern businesses.",
		Duration:    "6 weeks",
		Fee:         12000,
		ImageURL:    "/static/images/tally-prime.jpg",
	},
	{
		ID:          23,
		Title:       "ICSE (Software)",
		Description: "Comprehensive software training for ICSE curriculum.",
		Details:     "Covers programming, office tools, and software concepts as per ICSE standards, including hands-on projects.",
		Duration:    "12 weeks",
		Fee:         20000,
		ImageURL:    "/static/images/icse-software.jpg",
	},
	{
		ID:          24,
		Title:       "ICAP (Animation)",
		Description: "Professional animation course covering 2D and 3D techniques.",
		Details:     "Learn animation principles, character design, storyboarding, and software like Adobe Animate and Maya.",
		Duration:    "16 weeks",
		Fee:         40000,
		ImageURL:    "/static/images/icap-animation.jpg",
	},
	{
		ID:          25,
		Title:       "ICHNE (Hardware & Networking)",
		Description: "Learn computer hardware and networking essentials.",
		Details:     "Covers PC assembly, troubleshooting, networking basics, configuration, and security for IT support roles.",
		Duration:    "12 weeks",
		Fee:         25000,
		ImageURL:    "/static/images/ichne-hardware.jpg",
	},
	{
		ID:          26,
		Title:       "ICCA (Company Accountant)",
		Description: "Become a professional company accountant with practical skills.",
		Details:     "Covers accounting principles, Tally, GST, payroll, and financial reporting for corporate environments.",
		Duration:    "16 weeks",
		Fee:         30000,
		ImageURL:    "/static/images/icca-accountant.jpg",
	},
	{
		ID:          27,
		Title:       "Advanced Software Engineering",
		Description: "Deep dive into software engineering concepts and practices.",
		Details:     "Topics include software development life cycle, design patterns, testing, version control, and agile methodologies.",
		Duration:    "12 weeks",
		Fee:         35000,
		ImageURL:    "/static/images/advanced-software.jpg",
	},
	{
		ID:          28,
		Title:       "Full Stack Web Development",
		Description: "Become a full stack web developer with hands-on projects.",
		Details:     "Learn front-end (HTML, CSS, JavaScript) and back-end (Python, Node.js, databases) development, deployment, and version control.",
		Duration:    "16 weeks",
		Fee:         40000,
		ImageURL:    "/static/images/full-stack.jpg",
	},
	{
		ID:          29,
		Title:       "Ethical Hacking",
		Description: "Learn ethical hacking and cybersecurity techniques.",
		Details:     "Covers penetration testing, vulnerability assessment, network security, and ethical hacking tools and practices.",
		Duration:    "10 weeks",
		Fee:         25000,
		ImageURL:    "/static/images/ethical-hacking.jpg",
	},
	{
		ID:          30,
		Title:       "English Typing",
		Description: "Improve your English typing speed and accuracy.",
		Details:     "Covers touch typing techniques, speed building, and accuracy improvement for professional use.",
		Duration:    "4 weeks",
		Fee:         5000,
		ImageURL:    "/static/images/english-typing.jpg",
	},
	{
		ID:          31,
		Title:       "Marathi Typing",
		Description: "Learn Marathi typing for government and office work.",
		Details:     "Covers Marathi keyboard layouts, typing practice, and speed building for official documentation.",
		Duration:    "4 weeks",
		Fee:         5000,
		ImageURL:    "/static/images/marathi-typing.jpg",
	},
	{
		ID:          32,
		Title:       "Diploma in 2D/3D Animation",
		Description: "Professional diploma in 2D and 3D animation techniques.",
		Details:     "Covers animation principles, character design, 2D/3D software, and project work for animation careers.",
		Duration:    "24 weeks",
		Fee:         60000,
		ImageURL:    "/static/images/2d-3d-animation.jpg",
	},
	{
		ID:          33,
		Title:       "Diploma in VFX  Compositing",
		Description: "Professional diploma in VFX and compositing techniques.",
		Details:     "Covers visual effects, compositing, motion graphics, and industry-standard software for film and media.",
		Duration:    "24 weeks",
		Fee:         70000,
		ImageURL:    "/static/images/vfx-compositing.jpg",
	},
	{
		ID:          34,
		Title:       "Diploma in Mechanical Designing",
		Description: "Professional diploma in mechanical design and CAD.",
		Details:     "Covers mechanical drafting, 3D modeling, CAD software, and industry projects for mechanical engineering.",
		Duration:    "24 weeks",
		Fee:         65000,
		ImageURL:    "/static/images/mechanical-design.jpg",
	},
	{
		ID:          35,
		Title:       "Diploma in Construction & Interior Designing",
		Description: "Diploma in construction and interior design concepts.",
		Details:     "Learn architectural drafting, interior design principles, CAD tools, and project management for construction and interiors.",
		Duration:    "24 weeks",
		Fee:         65000,
		ImageURL:    "/static/images/construction-interior.jpg",
	},
	{
		ID:          36,
		Title:       "Diploma in Graphics & Motion Graphics",
		Description: "Comprehensive diploma in graphic and motion design.",
		Details:     "Learn graphic design, motion graphics, video editing, and animation using industry-standard tools.",
		Duration:    "24 weeks",
		Fee:         60000,
		ImageURL:    "/static/images/graphics-motion.jpg",
	},
}
