package render

// Fragment templates. html/template's contextual autoescaping covers the
// two interpolation contexts that matter: HTML element content and the JS
// string literals inside the onclick triggers. Field text therefore cannot
// break out of the surrounding markup or the trigger argument syntax.
const fragmentTemplates = `
{{- define "card"}}
            <div class="{{.CardClass}}">
                <div class="painting-image" style="background-image: url('{{.ImageURL}}'); background-size: cover; background-position: center;"></div>
                <div class="painting-info">
                    <h3>{{.Title}}</h3>
                    <p class="medium">{{.Medium}}</p>
                    <p class="description">{{.Description}}</p>
                    <div class="price-tag">From ${{.Price}}</div>
                    <button class="order-button" onclick="openOrderModal('{{.Title}}', '{{.Price}}')">ORDER PRINT</button>
                </div>
            </div>
{{- end}}
{{- define "featured"}}
    <!-- Featured Works Section -->
    <section class="featured-gallery">
        <h2>Featured Works</h2>
        <div class="featured-grid">
{{- range .Cards}}
{{.}}
{{- end}}
        </div>
    </section>
{{- end}}
{{- define "gallery"}}
    <!-- Tabbed Gallery Section -->
    <section class="gallery" id="gallery">
        <h2>Browse Collection</h2>

        <div class="tab-navigation">
{{- range .Buttons}}
            <button class="tab-button{{if .Active}} active{{end}}" onclick="showTab('{{.Key}}')">{{.Label}}</button>
{{- end}}
        </div>
{{range .Panels}}
            <div class="tab-content" id="{{.Key}}-tab" style="display: none;">
                <div class="gallery-grid">
{{- range .Cards}}
{{.}}
{{- end}}
                </div>
            </div>
{{- end}}
    </section>
{{- end}}`

// StyleBlock is the CSS inserted once per page for the featured grid and
// tab navigation.
const StyleBlock = `
        /* Featured Works Section */
        .featured-gallery {
            padding: 8rem 5%;
            background: var(--canvas-white);
        }

        .featured-gallery h2 {
            font-family: 'Cormorant Garamond', serif;
            font-size: 3.5rem;
            font-weight: 300;
            text-align: center;
            margin-bottom: 4rem;
        }

        .featured-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(400px, 1fr));
            gap: 3rem;
            max-width: 1400px;
            margin: 0 auto;
        }

        .featured-card {
            background: white;
            overflow: hidden;
            transition: transform 0.4s ease, box-shadow 0.4s ease;
        }

        .featured-card:hover {
            transform: translateY(-10px);
            box-shadow: 0 25px 50px rgba(0, 0, 0, 0.15);
        }

        .featured-card .painting-image {
            height: 450px;
        }

        /* Tabbed Gallery Section */
        .tab-navigation {
            display: flex;
            justify-content: center;
            gap: 0;
            margin-bottom: 4rem;
            border-bottom: 2px solid var(--gallery-gray);
        }

        .tab-button {
            padding: 1rem 2.5rem;
            background: transparent;
            border: none;
            font-family: 'Manrope', sans-serif;
            font-size: 1rem;
            font-weight: 500;
            color: #999;
            cursor: pointer;
            transition: all 0.3s ease;
            border-bottom: 3px solid transparent;
            letter-spacing: 0.5px;
        }

        .tab-button:hover {
            color: var(--accent-rust);
        }

        .tab-button.active {
            color: var(--ink-black);
            border-bottom: 3px solid var(--accent-rust);
        }

        .tab-content {
            animation: fadeIn 0.4s ease-in;
        }

        @keyframes fadeIn {
            from {
                opacity: 0;
                transform: translateY(10px);
            }
            to {
                opacity: 1;
                transform: translateY(0);
            }
        }

        .painting-info .description {
            font-size: 0.95rem;
            color: #666;
            line-height: 1.6;
            margin-bottom: 1.5rem;
        }

        @media (max-width: 968px) {
            .featured-grid {
                grid-template-columns: 1fr;
            }

            .tab-navigation {
                flex-wrap: wrap;
            }

            .tab-button {
                padding: 0.8rem 1.5rem;
                font-size: 0.9rem;
            }
        }
`

// scriptBlock is the tab-switching script inserted once per page. %s is the
// category key whose panel opens on page load.
const scriptBlock = `
        // Tab switching functionality
        function showTab(tabName) {
            const tabContents = document.querySelectorAll('.tab-content');
            tabContents.forEach(content => {
                content.style.display = 'none';
            });

            const tabButtons = document.querySelectorAll('.tab-button');
            tabButtons.forEach(button => {
                button.classList.remove('active');
            });

            const selectedTab = document.getElementById(tabName + '-tab');
            if (selectedTab) {
                selectedTab.style.display = 'block';
            }

            event.target.classList.add('active');
        }

        // Open the first gallery tab by default on page load
        window.addEventListener('DOMContentLoaded', () => {
            const defaultTab = document.getElementById('%s-tab');
            if (defaultTab) {
                defaultTab.style.display = 'block';
            }
        });
`
